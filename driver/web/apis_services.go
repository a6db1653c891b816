// Copyright 2022 Board of Trustees of the University of Illinois.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package web

import (
	"encoding/json"
	"io"
	"net/http"

	"registry-building-block/core"
	"registry-building-block/core/model"

	"github.com/gorilla/mux"
	"github.com/rokwire/core-auth-library-go/v3/tokenauth"
	"github.com/rokwire/logging-library-go/v2/logs"
	"github.com/rokwire/logging-library-go/v2/logutils"
)

//ServicesApisHandler handles the rest APIs for the public registration portal
type ServicesApisHandler struct {
	coreAPIs *core.APIs
}

type registrationFailure struct {
	Errors []model.FieldError `json:"errors"`
}

//registerOrganization submits a new organization registration
func (h ServicesApisHandler) registerOrganization(l *logs.Log, r *http.Request, claims *tokenauth.Claims) logs.HTTPResponse {
	data, err := io.ReadAll(r.Body)
	if err != nil {
		return l.HTTPResponseErrorAction(logutils.ActionRead, logutils.TypeRequestBody, nil, err, http.StatusBadRequest, false)
	}

	var registration model.OrganizationRegistration
	err = json.Unmarshal(data, &registration)
	if err != nil {
		return l.HTTPResponseErrorAction(logutils.ActionUnmarshal, model.TypeRegistration, nil, err, http.StatusBadRequest, true)
	}

	organization, fieldErrors, err := h.coreAPIs.Services.SerRegisterOrganization(registration)
	if err != nil {
		return l.HTTPResponseErrorAction(logutils.ActionCreate, model.TypeOrganization, nil, err, http.StatusInternalServerError, true)
	}
	if len(fieldErrors) > 0 {
		response, err := json.Marshal(registrationFailure{Errors: fieldErrors})
		if err != nil {
			return l.HTTPResponseErrorAction(logutils.ActionMarshal, model.TypeRegistration, nil, err, http.StatusInternalServerError, false)
		}
		return logs.HTTPResponse{ResponseCode: http.StatusBadRequest,
			Headers: map[string][]string{"Content-Type": {"application/json; charset=utf-8"}}, Body: response}
	}

	response, err := json.Marshal(organization)
	if err != nil {
		return l.HTTPResponseErrorAction(logutils.ActionMarshal, model.TypeOrganization, nil, err, http.StatusInternalServerError, false)
	}
	return l.HTTPResponseSuccessJSON(response)
}

//getOrganization gives an organization by id
func (h ServicesApisHandler) getOrganization(l *logs.Log, r *http.Request, claims *tokenauth.Claims) logs.HTTPResponse {
	params := mux.Vars(r)
	id := params["id"]

	organization, err := h.coreAPIs.Services.SerGetOrganization(id)
	if err != nil {
		return l.HTTPResponseErrorAction(logutils.ActionGet, model.TypeOrganization, nil, err, http.StatusInternalServerError, true)
	}
	if organization == nil {
		return l.HTTPResponseErrorData(logutils.StatusMissing, model.TypeOrganization, &logutils.FieldArgs{"id": id}, nil, http.StatusNotFound, false)
	}

	response, err := json.Marshal(organization)
	if err != nil {
		return l.HTTPResponseErrorAction(logutils.ActionMarshal, model.TypeOrganization, nil, err, http.StatusInternalServerError, false)
	}
	return l.HTTPResponseSuccessJSON(response)
}

//getLanguages gives the active languages
func (h ServicesApisHandler) getLanguages(l *logs.Log, r *http.Request, claims *tokenauth.Claims) logs.HTTPResponse {
	languages, err := h.coreAPIs.Services.SerGetLanguages()
	if err != nil {
		return l.HTTPResponseErrorAction(logutils.ActionGet, model.TypeLanguage, nil, err, http.StatusInternalServerError, true)
	}
	response, err := json.Marshal(languages)
	if err != nil {
		return l.HTTPResponseErrorAction(logutils.ActionMarshal, model.TypeLanguage, nil, err, http.StatusInternalServerError, false)
	}
	return l.HTTPResponseSuccessJSON(response)
}

//getRegions gives the regions
func (h ServicesApisHandler) getRegions(l *logs.Log, r *http.Request, claims *tokenauth.Claims) logs.HTTPResponse {
	regions, err := h.coreAPIs.Services.SerGetRegions()
	if err != nil {
		return l.HTTPResponseErrorAction(logutils.ActionGet, model.TypeRegion, nil, err, http.StatusInternalServerError, true)
	}
	response, err := json.Marshal(regions)
	if err != nil {
		return l.HTTPResponseErrorAction(logutils.ActionMarshal, model.TypeRegion, nil, err, http.StatusInternalServerError, false)
	}
	return l.HTTPResponseSuccessJSON(response)
}

//getServiceCategories gives the service categories
func (h ServicesApisHandler) getServiceCategories(l *logs.Log, r *http.Request, claims *tokenauth.Claims) logs.HTTPResponse {
	categories, err := h.coreAPIs.Services.SerGetServiceCategories()
	if err != nil {
		return l.HTTPResponseErrorAction(logutils.ActionGet, model.TypeServiceCategory, nil, err, http.StatusInternalServerError, true)
	}
	response, err := json.Marshal(categories)
	if err != nil {
		return l.HTTPResponseErrorAction(logutils.ActionMarshal, model.TypeServiceCategory, nil, err, http.StatusInternalServerError, false)
	}
	return l.HTTPResponseSuccessJSON(response)
}

//getServiceResources gives the service resources, optionally for one category
func (h ServicesApisHandler) getServiceResources(l *logs.Log, r *http.Request, claims *tokenauth.Claims) logs.HTTPResponse {
	var categoryID *string
	if value := r.URL.Query().Get("category_id"); value != "" {
		categoryID = &value
	}

	resources, err := h.coreAPIs.Services.SerGetServiceResources(categoryID)
	if err != nil {
		return l.HTTPResponseErrorAction(logutils.ActionGet, model.TypeServiceResource, nil, err, http.StatusInternalServerError, true)
	}
	response, err := json.Marshal(resources)
	if err != nil {
		return l.HTTPResponseErrorAction(logutils.ActionMarshal, model.TypeServiceResource, nil, err, http.StatusInternalServerError, false)
	}
	return l.HTTPResponseSuccessJSON(response)
}

//getFaiths gives the faiths
func (h ServicesApisHandler) getFaiths(l *logs.Log, r *http.Request, claims *tokenauth.Claims) logs.HTTPResponse {
	faiths, err := h.coreAPIs.Services.SerGetFaiths()
	if err != nil {
		return l.HTTPResponseErrorAction(logutils.ActionGet, model.TypeFaith, nil, err, http.StatusInternalServerError, true)
	}
	response, err := json.Marshal(faiths)
	if err != nil {
		return l.HTTPResponseErrorAction(logutils.ActionMarshal, model.TypeFaith, nil, err, http.StatusInternalServerError, false)
	}
	return l.HTTPResponseSuccessJSON(response)
}

//getSocialCategories gives the social categories
func (h ServicesApisHandler) getSocialCategories(l *logs.Log, r *http.Request, claims *tokenauth.Claims) logs.HTTPResponse {
	categories, err := h.coreAPIs.Services.SerGetSocialCategories()
	if err != nil {
		return l.HTTPResponseErrorAction(logutils.ActionGet, model.TypeSocialCategory, nil, err, http.StatusInternalServerError, true)
	}
	response, err := json.Marshal(categories)
	if err != nil {
		return l.HTTPResponseErrorAction(logutils.ActionMarshal, model.TypeSocialCategory, nil, err, http.StatusInternalServerError, false)
	}
	return l.HTTPResponseSuccessJSON(response)
}

//NewServicesApisHandler creates new services API handler instance
func NewServicesApisHandler(coreAPIs *core.APIs) ServicesApisHandler {
	return ServicesApisHandler{coreAPIs: coreAPIs}
}
