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

package core

import (
	"registry-building-block/core/model"

	"github.com/rokwire/core-auth-library-go/v3/tokenauth"
	"github.com/rokwire/logging-library-go/v2/logs"
	"gopkg.in/go-playground/validator.v9"
)

//APIs exposes to the drivers adapters access to the core functionality
type APIs struct {
	Services       Services       //expose to the drivers adapters
	Administration Administration //expose to the drivers adapters

	app *application
}

//Start starts the core part of the application
func (c *APIs) Start() {
	c.app.start()
}

//AddStatusListener registers a listener for organization status transitions
func (c *APIs) AddStatusListener(listener StatusListener) {
	c.app.addStatusListener(listener)
}

//GetVersion gives the service version
func (c *APIs) GetVersion() string {
	return c.app.version
}

//NewCoreAPIs creates new CoreAPIs
func NewCoreAPIs(env string, version string, build string, storage Storage, logger *logs.Logger) *APIs {
	application := application{env: env, version: version, build: build, storage: storage,
		logger: logger, validate: validator.New(), statusListeners: []StatusListener{}}

	servicesImpl := &servicesImpl{app: &application}
	administrationImpl := &administrationImpl{app: &application}

	coreAPIs := APIs{Services: servicesImpl, Administration: administrationImpl, app: &application}

	return &coreAPIs
}

///

//servicesImpl
type servicesImpl struct {
	app *application
}

func (s *servicesImpl) SerRegisterOrganization(registration model.OrganizationRegistration) (*model.Organization, []model.FieldError, error) {
	return s.app.serRegisterOrganization(registration)
}

func (s *servicesImpl) SerGetOrganization(id string) (*model.Organization, error) {
	return s.app.serGetOrganization(id)
}

func (s *servicesImpl) SerGetLanguages() ([]model.Language, error) {
	return s.app.serGetLanguages()
}

func (s *servicesImpl) SerGetRegions() ([]model.Region, error) {
	return s.app.serGetRegions()
}

func (s *servicesImpl) SerGetServiceCategories() ([]model.ServiceCategory, error) {
	return s.app.serGetServiceCategories()
}

func (s *servicesImpl) SerGetServiceResources(categoryID *string) ([]model.ServiceResource, error) {
	return s.app.serGetServiceResources(categoryID)
}

func (s *servicesImpl) SerGetFaiths() ([]model.Faith, error) {
	return s.app.serGetFaiths()
}

func (s *servicesImpl) SerGetSocialCategories() ([]model.SocialCategory, error) {
	return s.app.serGetSocialCategories()
}

///

//administrationImpl

type administrationImpl struct {
	app *application
}

func (s *administrationImpl) AdmGetOrganizations(status *model.OrganizationStatus, limit int, offset int) ([]model.Organization, error) {
	return s.app.admGetOrganizations(status, limit, offset)
}

func (s *administrationImpl) AdmGetOrganization(id string) (*model.Organization, error) {
	return s.app.admGetOrganization(id)
}

func (s *administrationImpl) AdmUpdateOrganizationStatus(id string, status model.OrganizationStatus, note string, claims *tokenauth.Claims) (*model.Organization, error) {
	return s.app.admUpdateOrganizationStatus(id, status, note, claims)
}

func (s *administrationImpl) AdmGetReviewNotes(organizationID string, claims *tokenauth.Claims) ([]model.ReviewNote, error) {
	return s.app.admGetReviewNotes(organizationID, claims)
}

func (s *administrationImpl) AdmGetAuditLogs(entityType *string, entityID *string, limit int, offset int, claims *tokenauth.Claims) ([]model.AuditLog, error) {
	return s.app.admGetAuditLogs(entityType, entityID, limit, offset, claims)
}

func (s *administrationImpl) AdmGetLanguages() ([]model.Language, error) {
	return s.app.admGetLanguages()
}

func (s *administrationImpl) AdmCreateLanguage(code string, name string, nativeName string, active bool, claims *tokenauth.Claims) (*model.Language, error) {
	return s.app.admCreateLanguage(code, name, nativeName, active, claims)
}

func (s *administrationImpl) AdmSetLanguageStatus(code string, active bool, claims *tokenauth.Claims) error {
	return s.app.admSetLanguageStatus(code, active, claims)
}

func (s *administrationImpl) AdmDeleteLanguage(code string, claims *tokenauth.Claims) error {
	return s.app.admDeleteLanguage(code, claims)
}

func (s *administrationImpl) AdmGetLanguageCoverage(code string) (*model.LanguageCoverage, error) {
	return s.app.admGetLanguageCoverage(code)
}

func (s *administrationImpl) AdmUpsertFieldTranslation(organizationID string, languageCode string, fieldName string, translatedText string, claims *tokenauth.Claims) (*model.OrganizationTranslation, error) {
	return s.app.admUpsertFieldTranslation(organizationID, languageCode, fieldName, translatedText, claims)
}

func (s *administrationImpl) AdmGetOrganizationTranslations(organizationID string, languageCode *string) ([]model.OrganizationTranslation, error) {
	return s.app.admGetOrganizationTranslations(organizationID, languageCode)
}

func (s *administrationImpl) AdmCreateRegion(state string, city string, claims *tokenauth.Claims) (*model.Region, error) {
	return s.app.admCreateRegion(state, city, claims)
}

func (s *administrationImpl) AdmDeleteRegion(id string, claims *tokenauth.Claims) error {
	return s.app.admDeleteRegion(id, claims)
}

func (s *administrationImpl) AdmCreateServiceCategory(name string, claims *tokenauth.Claims) (*model.ServiceCategory, error) {
	return s.app.admCreateServiceCategory(name, claims)
}

func (s *administrationImpl) AdmDeleteServiceCategory(id string, claims *tokenauth.Claims) error {
	return s.app.admDeleteServiceCategory(id, claims)
}

func (s *administrationImpl) AdmCreateServiceResource(name string, categoryID string, claims *tokenauth.Claims) (*model.ServiceResource, error) {
	return s.app.admCreateServiceResource(name, categoryID, claims)
}

func (s *administrationImpl) AdmDeleteServiceResource(id string, claims *tokenauth.Claims) error {
	return s.app.admDeleteServiceResource(id, claims)
}

func (s *administrationImpl) AdmCreateFaith(name string, claims *tokenauth.Claims) (*model.Faith, error) {
	return s.app.admCreateFaith(name, claims)
}

func (s *administrationImpl) AdmDeleteFaith(id string, claims *tokenauth.Claims) error {
	return s.app.admDeleteFaith(id, claims)
}

func (s *administrationImpl) AdmCreateSocialCategory(name string, claims *tokenauth.Claims) (*model.SocialCategory, error) {
	return s.app.admCreateSocialCategory(name, claims)
}

func (s *administrationImpl) AdmDeleteSocialCategory(id string, claims *tokenauth.Claims) error {
	return s.app.admDeleteSocialCategory(id, claims)
}
