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
	"fmt"
	"net/http"

	"registry-building-block/core"

	"github.com/gorilla/mux"
	"github.com/rokwire/core-auth-library-go/v3/tokenauth"
	"github.com/rokwire/logging-library-go/v2/logs"

	httpSwagger "github.com/swaggo/http-swagger"
)

//Adapter entity
type Adapter struct {
	host string
	port string
	auth *Auth

	defaultApisHandler  DefaultApisHandler
	servicesApisHandler ServicesApisHandler
	adminApisHandler    AdminApisHandler

	coreAPIs *core.APIs

	logger *logs.Logger
}

type handlerFunc = func(*logs.Log, *http.Request, *tokenauth.Claims) logs.HTTPResponse

// @title Registry Building Block API
// @description Organization registry building block API documentation.
// @version 1.0.0
// @host localhost
// @BasePath /registry
// @schemes https http

//Start starts the module
func (we Adapter) Start() {
	we.auth.Start()

	router := mux.NewRouter().StrictSlash(true)

	subRouter := router.PathPrefix("/registry").Subrouter()
	subRouter.PathPrefix("/doc/ui").Handler(we.serveDocUI())
	subRouter.HandleFunc("/doc", we.serveDoc)
	subRouter.HandleFunc("/version", we.wrapFunc(we.defaultApisHandler.getVersion, nil)).Methods("GET")

	///services ///
	servicesSubRouter := subRouter.PathPrefix("/services").Subrouter()
	servicesSubRouter.HandleFunc("/registrations", we.wrapFunc(we.servicesApisHandler.registerOrganization, nil)).Methods("POST")
	servicesSubRouter.HandleFunc("/organizations/{id}", we.wrapFunc(we.servicesApisHandler.getOrganization, nil)).Methods("GET")

	servicesSubRouter.HandleFunc("/languages", we.wrapFunc(we.servicesApisHandler.getLanguages, nil)).Methods("GET")
	servicesSubRouter.HandleFunc("/regions", we.wrapFunc(we.servicesApisHandler.getRegions, nil)).Methods("GET")
	servicesSubRouter.HandleFunc("/service-categories", we.wrapFunc(we.servicesApisHandler.getServiceCategories, nil)).Methods("GET")
	servicesSubRouter.HandleFunc("/service-resources", we.wrapFunc(we.servicesApisHandler.getServiceResources, nil)).Methods("GET")
	servicesSubRouter.HandleFunc("/faiths", we.wrapFunc(we.servicesApisHandler.getFaiths, nil)).Methods("GET")
	servicesSubRouter.HandleFunc("/social-categories", we.wrapFunc(we.servicesApisHandler.getSocialCategories, nil)).Methods("GET")

	///admin ///
	adminSubRouter := subRouter.PathPrefix("/admin").Subrouter()
	adminSubRouter.HandleFunc("/organizations", we.wrapFunc(we.adminApisHandler.getOrganizations, we.auth.adminAuth)).Methods("GET")
	adminSubRouter.HandleFunc("/organizations/{id}", we.wrapFunc(we.adminApisHandler.getOrganization, we.auth.adminAuth)).Methods("GET")
	adminSubRouter.HandleFunc("/organizations/{id}/status", we.wrapFunc(we.adminApisHandler.updateOrganizationStatus, we.auth.adminAuth)).Methods("PATCH")
	adminSubRouter.HandleFunc("/organizations/{id}/review-notes", we.wrapFunc(we.adminApisHandler.getReviewNotes, we.auth.adminAuth)).Methods("GET")
	adminSubRouter.HandleFunc("/organizations/{id}/translations", we.wrapFunc(we.adminApisHandler.getOrganizationTranslations, we.auth.adminAuth)).Methods("GET")
	adminSubRouter.HandleFunc("/organizations/{id}/translations/{lang}/{field}", we.wrapFunc(we.adminApisHandler.upsertFieldTranslation, we.auth.adminAuth)).Methods("PUT")

	adminSubRouter.HandleFunc("/audit-logs", we.wrapFunc(we.adminApisHandler.getAuditLogs, we.auth.adminAuth)).Methods("GET")

	adminSubRouter.HandleFunc("/languages", we.wrapFunc(we.adminApisHandler.getLanguages, we.auth.adminAuth)).Methods("GET")
	adminSubRouter.HandleFunc("/languages", we.wrapFunc(we.adminApisHandler.createLanguage, we.auth.adminAuth)).Methods("POST")
	adminSubRouter.HandleFunc("/languages/{code}/status", we.wrapFunc(we.adminApisHandler.setLanguageStatus, we.auth.adminAuth)).Methods("PUT")
	adminSubRouter.HandleFunc("/languages/{code}", we.wrapFunc(we.adminApisHandler.deleteLanguage, we.auth.adminAuth)).Methods("DELETE")
	adminSubRouter.HandleFunc("/languages/{code}/coverage", we.wrapFunc(we.adminApisHandler.getLanguageCoverage, we.auth.adminAuth)).Methods("GET")

	adminSubRouter.HandleFunc("/regions", we.wrapFunc(we.adminApisHandler.createRegion, we.auth.adminAuth)).Methods("POST")
	adminSubRouter.HandleFunc("/regions/{id}", we.wrapFunc(we.adminApisHandler.deleteRegion, we.auth.adminAuth)).Methods("DELETE")
	adminSubRouter.HandleFunc("/service-categories", we.wrapFunc(we.adminApisHandler.createServiceCategory, we.auth.adminAuth)).Methods("POST")
	adminSubRouter.HandleFunc("/service-categories/{id}", we.wrapFunc(we.adminApisHandler.deleteServiceCategory, we.auth.adminAuth)).Methods("DELETE")
	adminSubRouter.HandleFunc("/service-resources", we.wrapFunc(we.adminApisHandler.createServiceResource, we.auth.adminAuth)).Methods("POST")
	adminSubRouter.HandleFunc("/service-resources/{id}", we.wrapFunc(we.adminApisHandler.deleteServiceResource, we.auth.adminAuth)).Methods("DELETE")
	adminSubRouter.HandleFunc("/faiths", we.wrapFunc(we.adminApisHandler.createFaith, we.auth.adminAuth)).Methods("POST")
	adminSubRouter.HandleFunc("/faiths/{id}", we.wrapFunc(we.adminApisHandler.deleteFaith, we.auth.adminAuth)).Methods("DELETE")
	adminSubRouter.HandleFunc("/social-categories", we.wrapFunc(we.adminApisHandler.createSocialCategory, we.auth.adminAuth)).Methods("POST")
	adminSubRouter.HandleFunc("/social-categories/{id}", we.wrapFunc(we.adminApisHandler.deleteSocialCategory, we.auth.adminAuth)).Methods("DELETE")

	err := http.ListenAndServe(":"+we.port, router)
	if err != nil {
		we.logger.Fatalf("error on listen and server - %s", err.Error())
	}
}

func (we Adapter) serveDoc(w http.ResponseWriter, r *http.Request) {
	w.Header().Add("access-control-allow-origin", "*")
	http.ServeFile(w, r, "./driver/web/docs/swagger.yaml")
}

func (we Adapter) serveDocUI() http.Handler {
	url := fmt.Sprintf("%s/registry/doc", we.host)
	return httpSwagger.Handler(httpSwagger.URL(url))
}

func (we Adapter) wrapFunc(handler handlerFunc, authorization Authorization) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		logObj := we.logger.NewRequestLog(req)
		logObj.RequestReceived()

		var response logs.HTTPResponse
		if authorization != nil {
			responseStatus, claims, err := authorization.check(req)
			if err != nil {
				response = logObj.HTTPResponseError("unauthorized", err, responseStatus, true)
			} else {
				response = handler(logObj, req, claims)
			}
		} else {
			response = handler(logObj, req, nil)
		}

		logObj.SendHTTPResponse(w, response)
		logObj.RequestComplete()
	}
}

//NewWebAdapter creates new WebAdapter instance
func NewWebAdapter(coreAPIs *core.APIs, auth *Auth, host string, port string, logger *logs.Logger) Adapter {
	defaultApisHandler := NewDefaultApisHandler(coreAPIs)
	servicesApisHandler := NewServicesApisHandler(coreAPIs)
	adminApisHandler := NewAdminApisHandler(coreAPIs)

	return Adapter{host: host, port: port, auth: auth, defaultApisHandler: defaultApisHandler,
		servicesApisHandler: servicesApisHandler, adminApisHandler: adminApisHandler, coreAPIs: coreAPIs, logger: logger}
}
