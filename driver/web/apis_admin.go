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
	goerrors "errors"
	"io"
	"net/http"
	"strconv"

	"registry-building-block/core"
	"registry-building-block/core/model"
	"registry-building-block/utils"

	"github.com/gorilla/mux"
	"github.com/rokwire/core-auth-library-go/v3/tokenauth"
	"github.com/rokwire/logging-library-go/v2/errors"
	"github.com/rokwire/logging-library-go/v2/logs"
	"github.com/rokwire/logging-library-go/v2/logutils"
)

//AdminApisHandler handles the review and administration rest APIs
type AdminApisHandler struct {
	coreAPIs *core.APIs
}

//httpStatusForError maps the machine readable error statuses set by core to HTTP codes
func httpStatusForError(err error) int {
	var e *errors.Error
	if goerrors.As(err, &e) {
		switch e.Status() {
		case utils.ErrorStatusNoteRequired, utils.ErrorStatusInvalidTransition,
			utils.ErrorStatusAlreadyExists, utils.ErrorStatusBranchCapacity:
			return http.StatusBadRequest
		case utils.ErrorStatusNotFound:
			return http.StatusNotFound
		case utils.ErrorStatusInUse:
			return http.StatusConflict
		}
	}
	return http.StatusInternalServerError
}

func limitOffset(r *http.Request) (int, int) {
	limit := 0
	if value, err := strconv.Atoi(r.URL.Query().Get("limit")); err == nil {
		limit = value
	}
	offset := 0
	if value, err := strconv.Atoi(r.URL.Query().Get("offset")); err == nil {
		offset = value
	}
	return limit, offset
}

//getOrganizations gives the organizations, oldest submission first
func (h AdminApisHandler) getOrganizations(l *logs.Log, r *http.Request, claims *tokenauth.Claims) logs.HTTPResponse {
	var status *model.OrganizationStatus
	if value := r.URL.Query().Get("status"); value != "" {
		organizationStatus := model.OrganizationStatus(value)
		status = &organizationStatus
	}
	limit, offset := limitOffset(r)

	organizations, err := h.coreAPIs.Administration.AdmGetOrganizations(status, limit, offset)
	if err != nil {
		return l.HTTPResponseErrorAction(logutils.ActionGet, model.TypeOrganization, nil, err, http.StatusInternalServerError, true)
	}
	response, err := json.Marshal(organizations)
	if err != nil {
		return l.HTTPResponseErrorAction(logutils.ActionMarshal, model.TypeOrganization, nil, err, http.StatusInternalServerError, false)
	}
	return l.HTTPResponseSuccessJSON(response)
}

//getOrganization gives one organization by id
func (h AdminApisHandler) getOrganization(l *logs.Log, r *http.Request, claims *tokenauth.Claims) logs.HTTPResponse {
	params := mux.Vars(r)
	id := params["id"]

	organization, err := h.coreAPIs.Administration.AdmGetOrganization(id)
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

type updateStatusRequest struct {
	Status string `json:"status"`
	Note   string `json:"note"`
}

//updateOrganizationStatus moves an organization through the review state machine
func (h AdminApisHandler) updateOrganizationStatus(l *logs.Log, r *http.Request, claims *tokenauth.Claims) logs.HTTPResponse {
	params := mux.Vars(r)
	id := params["id"]

	data, err := io.ReadAll(r.Body)
	if err != nil {
		return l.HTTPResponseErrorAction(logutils.ActionRead, logutils.TypeRequestBody, nil, err, http.StatusBadRequest, false)
	}
	var requestData updateStatusRequest
	err = json.Unmarshal(data, &requestData)
	if err != nil {
		return l.HTTPResponseErrorAction(logutils.ActionUnmarshal, logutils.TypeRequestBody, nil, err, http.StatusBadRequest, true)
	}

	organization, err := h.coreAPIs.Administration.AdmUpdateOrganizationStatus(id,
		model.OrganizationStatus(requestData.Status), requestData.Note, claims)
	if err != nil {
		return l.HTTPResponseErrorAction(logutils.ActionUpdate, model.TypeOrganizationStatus, nil, err, httpStatusForError(err), true)
	}
	response, err := json.Marshal(organization)
	if err != nil {
		return l.HTTPResponseErrorAction(logutils.ActionMarshal, model.TypeOrganization, nil, err, http.StatusInternalServerError, false)
	}
	return l.HTTPResponseSuccessJSON(response)
}

//getReviewNotes gives the review trail of an organization
func (h AdminApisHandler) getReviewNotes(l *logs.Log, r *http.Request, claims *tokenauth.Claims) logs.HTTPResponse {
	params := mux.Vars(r)
	id := params["id"]

	notes, err := h.coreAPIs.Administration.AdmGetReviewNotes(id, claims)
	if err != nil {
		return l.HTTPResponseErrorAction(logutils.ActionGet, model.TypeReviewNote, nil, err, httpStatusForError(err), true)
	}
	response, err := json.Marshal(notes)
	if err != nil {
		return l.HTTPResponseErrorAction(logutils.ActionMarshal, model.TypeReviewNote, nil, err, http.StatusInternalServerError, false)
	}
	return l.HTTPResponseSuccessJSON(response)
}

//getAuditLogs gives audit records, newest first
func (h AdminApisHandler) getAuditLogs(l *logs.Log, r *http.Request, claims *tokenauth.Claims) logs.HTTPResponse {
	var entityType, entityID *string
	if value := r.URL.Query().Get("entity_type"); value != "" {
		entityType = &value
	}
	if value := r.URL.Query().Get("entity_id"); value != "" {
		entityID = &value
	}
	limit, offset := limitOffset(r)

	auditLogs, err := h.coreAPIs.Administration.AdmGetAuditLogs(entityType, entityID, limit, offset, claims)
	if err != nil {
		return l.HTTPResponseErrorAction(logutils.ActionGet, model.TypeAuditLog, nil, err, http.StatusInternalServerError, true)
	}
	response, err := json.Marshal(auditLogs)
	if err != nil {
		return l.HTTPResponseErrorAction(logutils.ActionMarshal, model.TypeAuditLog, nil, err, http.StatusInternalServerError, false)
	}
	return l.HTTPResponseSuccessJSON(response)
}

//getLanguages gives all languages, inactive included
func (h AdminApisHandler) getLanguages(l *logs.Log, r *http.Request, claims *tokenauth.Claims) logs.HTTPResponse {
	languages, err := h.coreAPIs.Administration.AdmGetLanguages()
	if err != nil {
		return l.HTTPResponseErrorAction(logutils.ActionGet, model.TypeLanguage, nil, err, http.StatusInternalServerError, true)
	}
	response, err := json.Marshal(languages)
	if err != nil {
		return l.HTTPResponseErrorAction(logutils.ActionMarshal, model.TypeLanguage, nil, err, http.StatusInternalServerError, false)
	}
	return l.HTTPResponseSuccessJSON(response)
}

type createLanguageRequest struct {
	Code       string `json:"code"`
	Name       string `json:"name"`
	NativeName string `json:"native_name"`
	Active     bool   `json:"active"`
}

//createLanguage adds a language to the directory
func (h AdminApisHandler) createLanguage(l *logs.Log, r *http.Request, claims *tokenauth.Claims) logs.HTTPResponse {
	data, err := io.ReadAll(r.Body)
	if err != nil {
		return l.HTTPResponseErrorAction(logutils.ActionRead, logutils.TypeRequestBody, nil, err, http.StatusBadRequest, false)
	}
	var requestData createLanguageRequest
	err = json.Unmarshal(data, &requestData)
	if err != nil {
		return l.HTTPResponseErrorAction(logutils.ActionUnmarshal, logutils.TypeRequestBody, nil, err, http.StatusBadRequest, true)
	}

	language, err := h.coreAPIs.Administration.AdmCreateLanguage(requestData.Code, requestData.Name,
		requestData.NativeName, requestData.Active, claims)
	if err != nil {
		return l.HTTPResponseErrorAction(logutils.ActionCreate, model.TypeLanguage, nil, err, httpStatusForError(err), true)
	}
	response, err := json.Marshal(language)
	if err != nil {
		return l.HTTPResponseErrorAction(logutils.ActionMarshal, model.TypeLanguage, nil, err, http.StatusInternalServerError, false)
	}
	return l.HTTPResponseSuccessJSON(response)
}

type languageStatusRequest struct {
	Active bool `json:"active"`
}

//setLanguageStatus activates or deactivates a language
func (h AdminApisHandler) setLanguageStatus(l *logs.Log, r *http.Request, claims *tokenauth.Claims) logs.HTTPResponse {
	params := mux.Vars(r)
	code := params["code"]

	data, err := io.ReadAll(r.Body)
	if err != nil {
		return l.HTTPResponseErrorAction(logutils.ActionRead, logutils.TypeRequestBody, nil, err, http.StatusBadRequest, false)
	}
	var requestData languageStatusRequest
	err = json.Unmarshal(data, &requestData)
	if err != nil {
		return l.HTTPResponseErrorAction(logutils.ActionUnmarshal, logutils.TypeRequestBody, nil, err, http.StatusBadRequest, true)
	}

	err = h.coreAPIs.Administration.AdmSetLanguageStatus(code, requestData.Active, claims)
	if err != nil {
		return l.HTTPResponseErrorAction(logutils.ActionUpdate, model.TypeLanguage, nil, err, httpStatusForError(err), true)
	}
	return l.HTTPResponseSuccess()
}

//deleteLanguage removes a language that has no translation jobs
func (h AdminApisHandler) deleteLanguage(l *logs.Log, r *http.Request, claims *tokenauth.Claims) logs.HTTPResponse {
	params := mux.Vars(r)
	code := params["code"]

	err := h.coreAPIs.Administration.AdmDeleteLanguage(code, claims)
	if err != nil {
		return l.HTTPResponseErrorAction(logutils.ActionDelete, model.TypeLanguage, nil, err, httpStatusForError(err), true)
	}
	return l.HTTPResponseSuccess()
}

//getLanguageCoverage gives the translation coverage of a language
func (h AdminApisHandler) getLanguageCoverage(l *logs.Log, r *http.Request, claims *tokenauth.Claims) logs.HTTPResponse {
	params := mux.Vars(r)
	code := params["code"]

	coverage, err := h.coreAPIs.Administration.AdmGetLanguageCoverage(code)
	if err != nil {
		return l.HTTPResponseErrorAction(logutils.ActionGet, model.TypeLanguageCoverage, nil, err, httpStatusForError(err), true)
	}
	response, err := json.Marshal(coverage)
	if err != nil {
		return l.HTTPResponseErrorAction(logutils.ActionMarshal, model.TypeLanguageCoverage, nil, err, http.StatusInternalServerError, false)
	}
	return l.HTTPResponseSuccessJSON(response)
}

type upsertTranslationRequest struct {
	TranslatedText string `json:"translated_text"`
}

//upsertFieldTranslation records a volunteer translation for one field
func (h AdminApisHandler) upsertFieldTranslation(l *logs.Log, r *http.Request, claims *tokenauth.Claims) logs.HTTPResponse {
	params := mux.Vars(r)
	organizationID := params["id"]
	languageCode := params["lang"]
	fieldName := params["field"]

	data, err := io.ReadAll(r.Body)
	if err != nil {
		return l.HTTPResponseErrorAction(logutils.ActionRead, logutils.TypeRequestBody, nil, err, http.StatusBadRequest, false)
	}
	var requestData upsertTranslationRequest
	err = json.Unmarshal(data, &requestData)
	if err != nil {
		return l.HTTPResponseErrorAction(logutils.ActionUnmarshal, logutils.TypeRequestBody, nil, err, http.StatusBadRequest, true)
	}

	translation, err := h.coreAPIs.Administration.AdmUpsertFieldTranslation(organizationID,
		languageCode, fieldName, requestData.TranslatedText, claims)
	if err != nil {
		return l.HTTPResponseErrorAction(logutils.ActionUpdate, model.TypeOrganizationTranslation, nil, err, httpStatusForError(err), true)
	}
	response, err := json.Marshal(translation)
	if err != nil {
		return l.HTTPResponseErrorAction(logutils.ActionMarshal, model.TypeOrganizationTranslation, nil, err, http.StatusInternalServerError, false)
	}
	return l.HTTPResponseSuccessJSON(response)
}

//getOrganizationTranslations gives the translated field values of an organization
func (h AdminApisHandler) getOrganizationTranslations(l *logs.Log, r *http.Request, claims *tokenauth.Claims) logs.HTTPResponse {
	params := mux.Vars(r)
	organizationID := params["id"]

	var languageCode *string
	if value := r.URL.Query().Get("language_code"); value != "" {
		languageCode = &value
	}

	translations, err := h.coreAPIs.Administration.AdmGetOrganizationTranslations(organizationID, languageCode)
	if err != nil {
		return l.HTTPResponseErrorAction(logutils.ActionGet, model.TypeOrganizationTranslation, nil, err, http.StatusInternalServerError, true)
	}
	response, err := json.Marshal(translations)
	if err != nil {
		return l.HTTPResponseErrorAction(logutils.ActionMarshal, model.TypeOrganizationTranslation, nil, err, http.StatusInternalServerError, false)
	}
	return l.HTTPResponseSuccessJSON(response)
}

type createRegionRequest struct {
	State string `json:"state"`
	City  string `json:"city"`
}

//createRegion adds a region
func (h AdminApisHandler) createRegion(l *logs.Log, r *http.Request, claims *tokenauth.Claims) logs.HTTPResponse {
	data, err := io.ReadAll(r.Body)
	if err != nil {
		return l.HTTPResponseErrorAction(logutils.ActionRead, logutils.TypeRequestBody, nil, err, http.StatusBadRequest, false)
	}
	var requestData createRegionRequest
	err = json.Unmarshal(data, &requestData)
	if err != nil {
		return l.HTTPResponseErrorAction(logutils.ActionUnmarshal, logutils.TypeRequestBody, nil, err, http.StatusBadRequest, true)
	}

	region, err := h.coreAPIs.Administration.AdmCreateRegion(requestData.State, requestData.City, claims)
	if err != nil {
		return l.HTTPResponseErrorAction(logutils.ActionCreate, model.TypeRegion, nil, err, httpStatusForError(err), true)
	}
	response, err := json.Marshal(region)
	if err != nil {
		return l.HTTPResponseErrorAction(logutils.ActionMarshal, model.TypeRegion, nil, err, http.StatusInternalServerError, false)
	}
	return l.HTTPResponseSuccessJSON(response)
}

//deleteRegion removes an unused region
func (h AdminApisHandler) deleteRegion(l *logs.Log, r *http.Request, claims *tokenauth.Claims) logs.HTTPResponse {
	params := mux.Vars(r)
	id := params["id"]

	err := h.coreAPIs.Administration.AdmDeleteRegion(id, claims)
	if err != nil {
		return l.HTTPResponseErrorAction(logutils.ActionDelete, model.TypeRegion, nil, err, httpStatusForError(err), true)
	}
	return l.HTTPResponseSuccess()
}

type createNamedEntityRequest struct {
	Name string `json:"name"`
}

//createServiceCategory adds a service category
func (h AdminApisHandler) createServiceCategory(l *logs.Log, r *http.Request, claims *tokenauth.Claims) logs.HTTPResponse {
	data, err := io.ReadAll(r.Body)
	if err != nil {
		return l.HTTPResponseErrorAction(logutils.ActionRead, logutils.TypeRequestBody, nil, err, http.StatusBadRequest, false)
	}
	var requestData createNamedEntityRequest
	err = json.Unmarshal(data, &requestData)
	if err != nil {
		return l.HTTPResponseErrorAction(logutils.ActionUnmarshal, logutils.TypeRequestBody, nil, err, http.StatusBadRequest, true)
	}

	category, err := h.coreAPIs.Administration.AdmCreateServiceCategory(requestData.Name, claims)
	if err != nil {
		return l.HTTPResponseErrorAction(logutils.ActionCreate, model.TypeServiceCategory, nil, err, httpStatusForError(err), true)
	}
	response, err := json.Marshal(category)
	if err != nil {
		return l.HTTPResponseErrorAction(logutils.ActionMarshal, model.TypeServiceCategory, nil, err, http.StatusInternalServerError, false)
	}
	return l.HTTPResponseSuccessJSON(response)
}

//deleteServiceCategory removes a service category with no resources under it
func (h AdminApisHandler) deleteServiceCategory(l *logs.Log, r *http.Request, claims *tokenauth.Claims) logs.HTTPResponse {
	params := mux.Vars(r)
	id := params["id"]

	err := h.coreAPIs.Administration.AdmDeleteServiceCategory(id, claims)
	if err != nil {
		return l.HTTPResponseErrorAction(logutils.ActionDelete, model.TypeServiceCategory, nil, err, httpStatusForError(err), true)
	}
	return l.HTTPResponseSuccess()
}

type createResourceRequest struct {
	Name       string `json:"name"`
	CategoryID string `json:"category_id"`
}

//createServiceResource adds a service resource under a category
func (h AdminApisHandler) createServiceResource(l *logs.Log, r *http.Request, claims *tokenauth.Claims) logs.HTTPResponse {
	data, err := io.ReadAll(r.Body)
	if err != nil {
		return l.HTTPResponseErrorAction(logutils.ActionRead, logutils.TypeRequestBody, nil, err, http.StatusBadRequest, false)
	}
	var requestData createResourceRequest
	err = json.Unmarshal(data, &requestData)
	if err != nil {
		return l.HTTPResponseErrorAction(logutils.ActionUnmarshal, logutils.TypeRequestBody, nil, err, http.StatusBadRequest, true)
	}

	resource, err := h.coreAPIs.Administration.AdmCreateServiceResource(requestData.Name, requestData.CategoryID, claims)
	if err != nil {
		return l.HTTPResponseErrorAction(logutils.ActionCreate, model.TypeServiceResource, nil, err, httpStatusForError(err), true)
	}
	response, err := json.Marshal(resource)
	if err != nil {
		return l.HTTPResponseErrorAction(logutils.ActionMarshal, model.TypeServiceResource, nil, err, http.StatusInternalServerError, false)
	}
	return l.HTTPResponseSuccessJSON(response)
}

//deleteServiceResource removes a service resource no organization references
func (h AdminApisHandler) deleteServiceResource(l *logs.Log, r *http.Request, claims *tokenauth.Claims) logs.HTTPResponse {
	params := mux.Vars(r)
	id := params["id"]

	err := h.coreAPIs.Administration.AdmDeleteServiceResource(id, claims)
	if err != nil {
		return l.HTTPResponseErrorAction(logutils.ActionDelete, model.TypeServiceResource, nil, err, httpStatusForError(err), true)
	}
	return l.HTTPResponseSuccess()
}

//createFaith adds a faith
func (h AdminApisHandler) createFaith(l *logs.Log, r *http.Request, claims *tokenauth.Claims) logs.HTTPResponse {
	data, err := io.ReadAll(r.Body)
	if err != nil {
		return l.HTTPResponseErrorAction(logutils.ActionRead, logutils.TypeRequestBody, nil, err, http.StatusBadRequest, false)
	}
	var requestData createNamedEntityRequest
	err = json.Unmarshal(data, &requestData)
	if err != nil {
		return l.HTTPResponseErrorAction(logutils.ActionUnmarshal, logutils.TypeRequestBody, nil, err, http.StatusBadRequest, true)
	}

	faith, err := h.coreAPIs.Administration.AdmCreateFaith(requestData.Name, claims)
	if err != nil {
		return l.HTTPResponseErrorAction(logutils.ActionCreate, model.TypeFaith, nil, err, httpStatusForError(err), true)
	}
	response, err := json.Marshal(faith)
	if err != nil {
		return l.HTTPResponseErrorAction(logutils.ActionMarshal, model.TypeFaith, nil, err, http.StatusInternalServerError, false)
	}
	return l.HTTPResponseSuccessJSON(response)
}

//deleteFaith removes a faith
func (h AdminApisHandler) deleteFaith(l *logs.Log, r *http.Request, claims *tokenauth.Claims) logs.HTTPResponse {
	params := mux.Vars(r)
	id := params["id"]

	err := h.coreAPIs.Administration.AdmDeleteFaith(id, claims)
	if err != nil {
		return l.HTTPResponseErrorAction(logutils.ActionDelete, model.TypeFaith, nil, err, httpStatusForError(err), true)
	}
	return l.HTTPResponseSuccess()
}

//createSocialCategory adds a social category
func (h AdminApisHandler) createSocialCategory(l *logs.Log, r *http.Request, claims *tokenauth.Claims) logs.HTTPResponse {
	data, err := io.ReadAll(r.Body)
	if err != nil {
		return l.HTTPResponseErrorAction(logutils.ActionRead, logutils.TypeRequestBody, nil, err, http.StatusBadRequest, false)
	}
	var requestData createNamedEntityRequest
	err = json.Unmarshal(data, &requestData)
	if err != nil {
		return l.HTTPResponseErrorAction(logutils.ActionUnmarshal, logutils.TypeRequestBody, nil, err, http.StatusBadRequest, true)
	}

	category, err := h.coreAPIs.Administration.AdmCreateSocialCategory(requestData.Name, claims)
	if err != nil {
		return l.HTTPResponseErrorAction(logutils.ActionCreate, model.TypeSocialCategory, nil, err, httpStatusForError(err), true)
	}
	response, err := json.Marshal(category)
	if err != nil {
		return l.HTTPResponseErrorAction(logutils.ActionMarshal, model.TypeSocialCategory, nil, err, http.StatusInternalServerError, false)
	}
	return l.HTTPResponseSuccessJSON(response)
}

//deleteSocialCategory removes a social category
func (h AdminApisHandler) deleteSocialCategory(l *logs.Log, r *http.Request, claims *tokenauth.Claims) logs.HTTPResponse {
	params := mux.Vars(r)
	id := params["id"]

	err := h.coreAPIs.Administration.AdmDeleteSocialCategory(id, claims)
	if err != nil {
		return l.HTTPResponseErrorAction(logutils.ActionDelete, model.TypeSocialCategory, nil, err, httpStatusForError(err), true)
	}
	return l.HTTPResponseSuccess()
}

//NewAdminApisHandler creates new admin API handler instance
func NewAdminApisHandler(coreAPIs *core.APIs) AdminApisHandler {
	return AdminApisHandler{coreAPIs: coreAPIs}
}
