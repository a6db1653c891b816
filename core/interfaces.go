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
	"registry-building-block/driven/storage"

	"github.com/rokwire/core-auth-library-go/v3/tokenauth"
)

//Services exposes the public registration APIs for the driver adapters
type Services interface {
	SerRegisterOrganization(registration model.OrganizationRegistration) (*model.Organization, []model.FieldError, error)
	SerGetOrganization(id string) (*model.Organization, error)

	SerGetLanguages() ([]model.Language, error)
	SerGetRegions() ([]model.Region, error)
	SerGetServiceCategories() ([]model.ServiceCategory, error)
	SerGetServiceResources(categoryID *string) ([]model.ServiceResource, error)
	SerGetFaiths() ([]model.Faith, error)
	SerGetSocialCategories() ([]model.SocialCategory, error)
}

//Administration exposes the review and reference data administration APIs for the driver adapters
type Administration interface {
	AdmGetOrganizations(status *model.OrganizationStatus, limit int, offset int) ([]model.Organization, error)
	AdmGetOrganization(id string) (*model.Organization, error)
	AdmUpdateOrganizationStatus(id string, status model.OrganizationStatus, note string, claims *tokenauth.Claims) (*model.Organization, error)
	AdmGetReviewNotes(organizationID string, claims *tokenauth.Claims) ([]model.ReviewNote, error)
	AdmGetAuditLogs(entityType *string, entityID *string, limit int, offset int, claims *tokenauth.Claims) ([]model.AuditLog, error)

	AdmGetLanguages() ([]model.Language, error)
	AdmCreateLanguage(code string, name string, nativeName string, active bool, claims *tokenauth.Claims) (*model.Language, error)
	AdmSetLanguageStatus(code string, active bool, claims *tokenauth.Claims) error
	AdmDeleteLanguage(code string, claims *tokenauth.Claims) error
	AdmGetLanguageCoverage(code string) (*model.LanguageCoverage, error)

	AdmUpsertFieldTranslation(organizationID string, languageCode string, fieldName string, translatedText string, claims *tokenauth.Claims) (*model.OrganizationTranslation, error)
	AdmGetOrganizationTranslations(organizationID string, languageCode *string) ([]model.OrganizationTranslation, error)

	AdmCreateRegion(state string, city string, claims *tokenauth.Claims) (*model.Region, error)
	AdmDeleteRegion(id string, claims *tokenauth.Claims) error
	AdmCreateServiceCategory(name string, claims *tokenauth.Claims) (*model.ServiceCategory, error)
	AdmDeleteServiceCategory(id string, claims *tokenauth.Claims) error
	AdmCreateServiceResource(name string, categoryID string, claims *tokenauth.Claims) (*model.ServiceResource, error)
	AdmDeleteServiceResource(id string, claims *tokenauth.Claims) error
	AdmCreateFaith(name string, claims *tokenauth.Claims) (*model.Faith, error)
	AdmDeleteFaith(id string, claims *tokenauth.Claims) error
	AdmCreateSocialCategory(name string, claims *tokenauth.Claims) (*model.SocialCategory, error)
	AdmDeleteSocialCategory(id string, claims *tokenauth.Claims) error
}

//Storage is used by core to store data - the MongoDB storage adapter implements it
type Storage interface {
	PerformTransaction(transaction func(context storage.TransactionContext) error) error

	AllocateOrganizationSequence(context storage.TransactionContext) (int, error)
	AllocateBranchSequence(context storage.TransactionContext, parentCustomID string) (int, error)

	InsertOrganization(context storage.TransactionContext, organization model.Organization) error
	FindOrganization(id string) (*model.Organization, error)
	FindOrganizationByNameAndCity(nameLower string, city string) (*model.Organization, error)
	FindOrganizations(status *model.OrganizationStatus, limit int, offset int) ([]model.Organization, error)
	FindOrganizationIDsByStatus(status model.OrganizationStatus) ([]string, error)
	CountOrganizationsByStatus(status model.OrganizationStatus) (int64, error)
	UpdateOrganizationStatus(context storage.TransactionContext, id string, status model.OrganizationStatus) error

	InsertReviewNote(context storage.TransactionContext, note model.ReviewNote) error
	FindReviewNotes(organizationID string) ([]model.ReviewNote, error)
	InsertAuditLog(context storage.TransactionContext, auditLog model.AuditLog) error
	FindAuditLogs(entityType *string, entityID *string, limit int, offset int) ([]model.AuditLog, error)

	FindLanguages(activeOnly bool) ([]model.Language, error)
	FindLanguage(code string) (*model.Language, error)
	InsertLanguage(context storage.TransactionContext, language model.Language) error
	UpdateLanguageStatus(context storage.TransactionContext, code string, active bool) error
	DeleteLanguage(code string) error
	RefreshCachedLanguages() error

	InsertTranslationJobs(context storage.TransactionContext, jobs []model.TranslationJob) error
	FindTranslationJob(organizationID string, languageCode string) (*model.TranslationJob, error)
	UpdateTranslationJobStatus(context storage.TransactionContext, id string, status model.TranslationStatus) error
	CancelPendingTranslationJobs(context storage.TransactionContext, languageCode string) (int64, error)
	CountTranslationJobs(languageCode string, status *model.TranslationStatus) (int64, error)

	UpsertOrganizationTranslation(context storage.TransactionContext, translation model.OrganizationTranslation) (*model.OrganizationTranslation, error)
	FindOrganizationTranslations(organizationID string, languageCode *string) ([]model.OrganizationTranslation, error)

	FindRegions() ([]model.Region, error)
	FindRegion(id string) (*model.Region, error)
	InsertRegion(region model.Region) error
	DeleteRegion(id string) error
	CountBranchesByRegion(regionID string) (int64, error)

	FindServiceCategories() ([]model.ServiceCategory, error)
	InsertServiceCategory(category model.ServiceCategory) error
	DeleteServiceCategory(id string) error
	FindServiceResources(categoryID *string) ([]model.ServiceResource, error)
	FindServiceResourcesByIDs(ids []string) ([]model.ServiceResource, error)
	InsertServiceResource(resource model.ServiceResource) error
	DeleteServiceResource(id string) error
	CountServiceResourcesByCategory(categoryID string) (int64, error)
	CountOrganizationsByResource(resourceID string) (int64, error)

	FindFaiths() ([]model.Faith, error)
	InsertFaith(faith model.Faith) error
	DeleteFaith(id string) error
	FindSocialCategories() ([]model.SocialCategory, error)
	InsertSocialCategory(category model.SocialCategory) error
	DeleteSocialCategory(id string) error
}

//StatusListener is notified after an organization status transition commits.
//Listeners run outside the transaction and must not assume they share it.
type StatusListener interface {
	OnOrganizationStatusChanged(organization model.Organization, statusBefore model.OrganizationStatus)
}
