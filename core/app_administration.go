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
	"math"
	"strings"
	"time"

	"registry-building-block/core/model"
	"registry-building-block/driven/storage"
	"registry-building-block/utils"

	"github.com/google/uuid"
	"github.com/rokwire/core-auth-library-go/v3/tokenauth"
	"github.com/rokwire/logging-library-go/v2/errors"
	"github.com/rokwire/logging-library-go/v2/logutils"
)

func (app *application) admGetOrganizations(status *model.OrganizationStatus, limit int, offset int) ([]model.Organization, error) {
	if status != nil && !status.Valid() {
		return nil, errors.ErrorData(logutils.StatusInvalid, model.TypeOrganizationStatus, &logutils.FieldArgs{"status": *status})
	}
	organizations, err := app.storage.FindOrganizations(status, limit, offset)
	if err != nil {
		return nil, errors.WrapErrorAction(logutils.ActionFind, model.TypeOrganization, nil, err)
	}
	return organizations, nil
}

func (app *application) admGetOrganization(id string) (*model.Organization, error) {
	organization, err := app.storage.FindOrganization(id)
	if err != nil {
		return nil, errors.WrapErrorAction(logutils.ActionFind, model.TypeOrganization, &logutils.FieldArgs{"id": id}, err)
	}
	return organization, nil
}

//admUpdateOrganizationStatus moves an organization through the review lifecycle.
//The status write, the review note and the audit record commit in one transaction;
//listeners are notified only after the commit.
func (app *application) admUpdateOrganizationStatus(id string, status model.OrganizationStatus, note string, claims *tokenauth.Claims) (*model.Organization, error) {
	if !canReview(claims) {
		return nil, errors.ErrorData(logutils.StatusInvalid, logutils.TypeClaim, nil)
	}
	if !status.Valid() {
		return nil, errors.ErrorData(logutils.StatusInvalid, model.TypeOrganizationStatus, &logutils.FieldArgs{"status": status})
	}

	organization, err := app.storage.FindOrganization(id)
	if err != nil {
		return nil, errors.WrapErrorAction(logutils.ActionFind, model.TypeOrganization, &logutils.FieldArgs{"id": id}, err)
	}
	if organization == nil {
		return nil, errors.ErrorData(logutils.StatusMissing, model.TypeOrganization,
			&logutils.FieldArgs{"id": id}).SetStatus(utils.ErrorStatusNotFound)
	}

	statusBefore := organization.Status
	if !canTransition(statusBefore, status) {
		return nil, errors.ErrorData(logutils.StatusInvalid, model.TypeOrganizationStatus,
			&logutils.FieldArgs{"from": statusBefore, "to": status}).SetStatus(utils.ErrorStatusInvalidTransition)
	}

	note = strings.TrimSpace(note)
	if status.RequiresNote() && note == "" {
		return nil, errors.ErrorData(logutils.StatusMissing, model.TypeReviewNote,
			&logutils.FieldArgs{"status": status}).SetStatus(utils.ErrorStatusNoteRequired)
	}

	now := time.Now().UTC()
	transaction := func(context storage.TransactionContext) error {
		err := app.storage.UpdateOrganizationStatus(context, id, status)
		if err != nil {
			return errors.WrapErrorAction(logutils.ActionUpdate, model.TypeOrganization, &logutils.FieldArgs{"id": id}, err)
		}

		//every status change records a note, even when the note text is empty
		reviewerID, reviewerName := "", ""
		if claims != nil {
			reviewerID, reviewerName = claims.Subject, claims.Name
		}
		reviewNote := model.ReviewNote{ID: uuid.NewString(), OrganizationID: id, ReviewerID: reviewerID,
			ReviewerName: reviewerName, Note: note, StatusBefore: statusBefore, StatusAfter: status, DateCreated: now}
		err = app.storage.InsertReviewNote(context, reviewNote)
		if err != nil {
			return errors.WrapErrorAction(logutils.ActionInsert, model.TypeReviewNote, nil, err)
		}

		metadata := map[string]interface{}{"status_before": string(statusBefore), "status_after": string(status)}
		return app.writeAuditLog(context, claims, model.AuditActionForStatus(status), string(model.TypeOrganization), id, metadata)
	}

	err = app.storage.PerformTransaction(transaction)
	if err != nil {
		return nil, errors.WrapErrorAction(logutils.ActionUpdate, model.TypeOrganizationStatus, &logutils.FieldArgs{"id": id}, err)
	}

	organization.Status = status
	organization.DateUpdated = &now
	app.notifyStatusChanged(*organization, statusBefore)

	return organization, nil
}

//canTransition says whether the review state machine allows the move.
//Any status can move to any other status, so a rejected organization can be
//re-approved later. Only a write of the current status again is rejected.
func canTransition(from model.OrganizationStatus, to model.OrganizationStatus) bool {
	return from != to
}

func (app *application) admGetReviewNotes(organizationID string, claims *tokenauth.Claims) ([]model.ReviewNote, error) {
	organization, err := app.storage.FindOrganization(organizationID)
	if err != nil {
		return nil, errors.WrapErrorAction(logutils.ActionFind, model.TypeOrganization, &logutils.FieldArgs{"id": organizationID}, err)
	}
	if organization == nil {
		return nil, errors.ErrorData(logutils.StatusMissing, model.TypeOrganization,
			&logutils.FieldArgs{"id": organizationID}).SetStatus(utils.ErrorStatusNotFound)
	}
	notes, err := app.storage.FindReviewNotes(organizationID)
	if err != nil {
		return nil, errors.WrapErrorAction(logutils.ActionFind, model.TypeReviewNote, nil, err)
	}
	return notes, nil
}

func (app *application) admGetAuditLogs(entityType *string, entityID *string, limit int, offset int, claims *tokenauth.Claims) ([]model.AuditLog, error) {
	logs, err := app.storage.FindAuditLogs(entityType, entityID, limit, offset)
	if err != nil {
		return nil, errors.WrapErrorAction(logutils.ActionFind, model.TypeAuditLog, nil, err)
	}
	return logs, nil
}

///
// languages and translation coverage

func (app *application) admGetLanguages() ([]model.Language, error) {
	return app.storage.FindLanguages(false)
}

func (app *application) admCreateLanguage(code string, name string, nativeName string, active bool, claims *tokenauth.Claims) (*model.Language, error) {
	code = strings.ToLower(strings.TrimSpace(code))
	if code == "" || name == "" {
		return nil, errors.ErrorData(logutils.StatusMissing, model.TypeLanguage, &logutils.FieldArgs{"code": code, "name": name})
	}

	existing, err := app.storage.FindLanguage(code)
	if err != nil {
		return nil, errors.WrapErrorAction(logutils.ActionFind, model.TypeLanguage, &logutils.FieldArgs{"code": code}, err)
	}
	if existing != nil {
		return nil, errors.ErrorData(logutils.StatusFound, model.TypeLanguage,
			&logutils.FieldArgs{"code": code}).SetStatus(utils.ErrorStatusAlreadyExists)
	}

	language := model.Language{ID: uuid.NewString(), Code: code, Name: name, NativeName: nativeName,
		Active: active, DateCreated: time.Now().UTC()}

	transaction := func(context storage.TransactionContext) error {
		err := app.storage.InsertLanguage(context, language)
		if err != nil {
			return errors.WrapErrorAction(logutils.ActionInsert, model.TypeLanguage, nil, err)
		}
		if active {
			err = app.fanOutTranslationJobs(context, code)
			if err != nil {
				return err
			}
		}
		return app.writeAuditLog(context, claims, "LANGUAGE_CREATED", string(model.TypeLanguage), language.ID,
			map[string]interface{}{"code": code, "active": active})
	}

	err = app.storage.PerformTransaction(transaction)
	if err != nil {
		return nil, errors.WrapErrorAction(logutils.ActionCreate, model.TypeLanguage, &logutils.FieldArgs{"code": code}, err)
	}
	app.refreshLanguageCache()
	return &language, nil
}

//admSetLanguageStatus flips a language's activation flag. Activation fans out pending
//translation jobs for every approved organization; deactivation cancels the still
//pending jobs and leaves completed work untouched.
func (app *application) admSetLanguageStatus(code string, active bool, claims *tokenauth.Claims) error {
	language, err := app.storage.FindLanguage(code)
	if err != nil {
		return errors.WrapErrorAction(logutils.ActionFind, model.TypeLanguage, &logutils.FieldArgs{"code": code}, err)
	}
	if language == nil {
		return errors.ErrorData(logutils.StatusMissing, model.TypeLanguage,
			&logutils.FieldArgs{"code": code}).SetStatus(utils.ErrorStatusNotFound)
	}
	if language.Active == active {
		return nil
	}

	action := "LANGUAGE_DEACTIVATED"
	if active {
		action = "LANGUAGE_ACTIVATED"
	}

	transaction := func(context storage.TransactionContext) error {
		err := app.storage.UpdateLanguageStatus(context, code, active)
		if err != nil {
			return errors.WrapErrorAction(logutils.ActionUpdate, model.TypeLanguage, &logutils.FieldArgs{"code": code}, err)
		}

		if active {
			err = app.fanOutTranslationJobs(context, code)
			if err != nil {
				return err
			}
		} else {
			_, err = app.storage.CancelPendingTranslationJobs(context, code)
			if err != nil {
				return errors.WrapErrorAction(logutils.ActionUpdate, model.TypeTranslationJob, &logutils.FieldArgs{"language": code}, err)
			}
		}

		return app.writeAuditLog(context, claims, action, string(model.TypeLanguage), language.ID,
			map[string]interface{}{"code": code})
	}

	err = app.storage.PerformTransaction(transaction)
	if err != nil {
		return errors.WrapErrorAction(logutils.ActionUpdate, model.TypeLanguage, &logutils.FieldArgs{"code": code}, err)
	}
	app.refreshLanguageCache()
	return nil
}

//refreshLanguageCache reloads the storage language cache after a language
//mutation commits. A failed reload is only logged - the write itself succeeded
//and the next language write reloads the cache again.
func (app *application) refreshLanguageCache() {
	err := app.storage.RefreshCachedLanguages()
	if err != nil && app.logger != nil {
		app.logger.Errorf("error refreshing the cached languages - %s", err)
	}
}

//fanOutTranslationJobs creates pending jobs for every approved organization in the given
//language. The insert ignores duplicate keys, so re-activating a language never doubles jobs.
func (app *application) fanOutTranslationJobs(context storage.TransactionContext, code string) error {
	organizationIDs, err := app.storage.FindOrganizationIDsByStatus(model.OrgStatusApproved)
	if err != nil {
		return errors.WrapErrorAction(logutils.ActionFind, model.TypeOrganization, nil, err)
	}
	if len(organizationIDs) == 0 {
		return nil
	}
	jobs := translationJobsFor(organizationIDs, []string{code})
	err = app.storage.InsertTranslationJobs(context, jobs)
	if err != nil {
		return errors.WrapErrorAction(logutils.ActionInsert, model.TypeTranslationJob, &logutils.FieldArgs{"language": code}, err)
	}
	return nil
}

func (app *application) admDeleteLanguage(code string, claims *tokenauth.Claims) error {
	language, err := app.storage.FindLanguage(code)
	if err != nil {
		return errors.WrapErrorAction(logutils.ActionFind, model.TypeLanguage, &logutils.FieldArgs{"code": code}, err)
	}
	if language == nil {
		return errors.ErrorData(logutils.StatusMissing, model.TypeLanguage,
			&logutils.FieldArgs{"code": code}).SetStatus(utils.ErrorStatusNotFound)
	}

	jobCount, err := app.storage.CountTranslationJobs(code, nil)
	if err != nil {
		return errors.WrapErrorAction(logutils.ActionCount, model.TypeTranslationJob, &logutils.FieldArgs{"language": code}, err)
	}
	if jobCount > 0 {
		return errors.ErrorData(logutils.StatusInvalid, model.TypeLanguage,
			&logutils.FieldArgs{"code": code, "jobs": jobCount}).SetStatus(utils.ErrorStatusInUse)
	}

	err = app.storage.DeleteLanguage(code)
	if err != nil {
		return errors.WrapErrorAction(logutils.ActionDelete, model.TypeLanguage, &logutils.FieldArgs{"code": code}, err)
	}
	app.refreshLanguageCache()
	return app.writeAuditLog(nil, claims, "LANGUAGE_DELETED", string(model.TypeLanguage), language.ID,
		map[string]interface{}{"code": code})
}

//admGetLanguageCoverage computes coverage on read - reviewed jobs over approved organizations
func (app *application) admGetLanguageCoverage(code string) (*model.LanguageCoverage, error) {
	language, err := app.storage.FindLanguage(code)
	if err != nil {
		return nil, errors.WrapErrorAction(logutils.ActionFind, model.TypeLanguage, &logutils.FieldArgs{"code": code}, err)
	}
	if language == nil {
		return nil, errors.ErrorData(logutils.StatusMissing, model.TypeLanguage,
			&logutils.FieldArgs{"code": code}).SetStatus(utils.ErrorStatusNotFound)
	}

	approved, err := app.storage.CountOrganizationsByStatus(model.OrgStatusApproved)
	if err != nil {
		return nil, errors.WrapErrorAction(logutils.ActionCount, model.TypeOrganization, nil, err)
	}
	reviewedStatus := model.TranslationStatusReviewed
	reviewed, err := app.storage.CountTranslationJobs(code, &reviewedStatus)
	if err != nil {
		return nil, errors.WrapErrorAction(logutils.ActionCount, model.TypeTranslationJob, &logutils.FieldArgs{"language": code}, err)
	}

	percent := 0
	if approved > 0 {
		percent = int(math.Round(float64(reviewed) / float64(approved) * 100))
	}
	return &model.LanguageCoverage{LanguageCode: code, ApprovedOrganizations: approved,
		ReviewedJobs: reviewed, Percent: percent}, nil
}

//admUpsertFieldTranslation records a volunteer translation for one organization field.
//When every translatable field of the pair is reviewed the job itself is promoted.
func (app *application) admUpsertFieldTranslation(organizationID string, languageCode string, fieldName string,
	translatedText string, claims *tokenauth.Claims) (*model.OrganizationTranslation, error) {
	if !canReview(claims) {
		return nil, errors.ErrorData(logutils.StatusInvalid, logutils.TypeClaim, nil)
	}
	if !model.TranslatableField(fieldName) {
		return nil, errors.ErrorData(logutils.StatusInvalid, model.TypeOrganizationTranslation,
			&logutils.FieldArgs{"field_name": fieldName})
	}
	translatedText = strings.TrimSpace(translatedText)
	if translatedText == "" {
		return nil, errors.ErrorData(logutils.StatusMissing, model.TypeOrganizationTranslation,
			&logutils.FieldArgs{"field_name": fieldName})
	}

	job, err := app.storage.FindTranslationJob(organizationID, languageCode)
	if err != nil {
		return nil, errors.WrapErrorAction(logutils.ActionFind, model.TypeTranslationJob,
			&logutils.FieldArgs{"organization_id": organizationID, "language": languageCode}, err)
	}
	if job == nil {
		return nil, errors.ErrorData(logutils.StatusMissing, model.TypeTranslationJob,
			&logutils.FieldArgs{"organization_id": organizationID, "language": languageCode}).SetStatus(utils.ErrorStatusNotFound)
	}
	if job.Status == model.TranslationStatusCancelled {
		return nil, errors.ErrorData(logutils.StatusInvalid, model.TypeTranslationJob,
			&logutils.FieldArgs{"organization_id": organizationID, "language": languageCode, "status": job.Status})
	}

	//the promotion check uses the pre-transaction state plus the field being written now
	existing, err := app.storage.FindOrganizationTranslations(organizationID, &languageCode)
	if err != nil {
		return nil, errors.WrapErrorAction(logutils.ActionFind, model.TypeOrganizationTranslation, nil, err)
	}
	reviewedFields := map[string]bool{fieldName: true}
	for _, translation := range existing {
		if translation.Status == model.TranslationStatusReviewed {
			reviewedFields[translation.FieldName] = true
		}
	}
	allReviewed := true
	for _, field := range model.TranslatableFields {
		if !reviewedFields[field] {
			allReviewed = false
			break
		}
	}

	translatorID := ""
	if claims != nil {
		translatorID = claims.Subject
	}
	translation := model.OrganizationTranslation{ID: uuid.NewString(), OrganizationID: organizationID,
		LanguageCode: languageCode, FieldName: fieldName, TranslatedText: translatedText,
		Status: model.TranslationStatusReviewed, TranslatorID: translatorID, DateCreated: time.Now().UTC()}

	var stored *model.OrganizationTranslation
	transaction := func(context storage.TransactionContext) error {
		stored, err = app.storage.UpsertOrganizationTranslation(context, translation)
		if err != nil {
			return errors.WrapErrorAction("upserting", model.TypeOrganizationTranslation, nil, err)
		}

		if allReviewed && job.Status != model.TranslationStatusReviewed {
			err = app.storage.UpdateTranslationJobStatus(context, job.ID, model.TranslationStatusReviewed)
			if err != nil {
				return errors.WrapErrorAction(logutils.ActionUpdate, model.TypeTranslationJob, &logutils.FieldArgs{"id": job.ID}, err)
			}
		}

		return app.writeAuditLog(context, claims, "TRANSLATION_UPSERTED", string(model.TypeOrganizationTranslation), stored.ID,
			map[string]interface{}{"organization_id": organizationID, "language": languageCode, "field_name": fieldName})
	}

	err = app.storage.PerformTransaction(transaction)
	if err != nil {
		return nil, errors.WrapErrorAction(logutils.ActionUpdate, model.TypeOrganizationTranslation, nil, err)
	}
	return stored, nil
}

func (app *application) admGetOrganizationTranslations(organizationID string, languageCode *string) ([]model.OrganizationTranslation, error) {
	translations, err := app.storage.FindOrganizationTranslations(organizationID, languageCode)
	if err != nil {
		return nil, errors.WrapErrorAction(logutils.ActionFind, model.TypeOrganizationTranslation, nil, err)
	}
	return translations, nil
}

///
// reference data

func (app *application) admCreateRegion(state string, city string, claims *tokenauth.Claims) (*model.Region, error) {
	if state == "" || city == "" {
		return nil, errors.ErrorData(logutils.StatusMissing, model.TypeRegion, &logutils.FieldArgs{"state": state, "city": city})
	}
	region := model.Region{ID: uuid.NewString(), State: state, City: city, DateCreated: time.Now().UTC()}
	err := app.storage.InsertRegion(region)
	if err != nil {
		return nil, errors.WrapErrorAction(logutils.ActionInsert, model.TypeRegion, nil, err)
	}
	err = app.writeAuditLog(nil, claims, "REGION_CREATED", string(model.TypeRegion), region.ID,
		map[string]interface{}{"state": state, "city": city})
	if err != nil {
		return nil, err
	}
	return &region, nil
}

func (app *application) admDeleteRegion(id string, claims *tokenauth.Claims) error {
	region, err := app.storage.FindRegion(id)
	if err != nil {
		return errors.WrapErrorAction(logutils.ActionFind, model.TypeRegion, &logutils.FieldArgs{"id": id}, err)
	}
	if region == nil {
		return errors.ErrorData(logutils.StatusMissing, model.TypeRegion,
			&logutils.FieldArgs{"id": id}).SetStatus(utils.ErrorStatusNotFound)
	}

	inUse, err := app.storage.CountBranchesByRegion(id)
	if err != nil {
		return errors.WrapErrorAction(logutils.ActionCount, model.TypeOrganizationBranch, &logutils.FieldArgs{"region_id": id}, err)
	}
	if inUse > 0 {
		return errors.ErrorData(logutils.StatusInvalid, model.TypeRegion,
			&logutils.FieldArgs{"id": id, "branches": inUse}).SetStatus(utils.ErrorStatusInUse)
	}

	err = app.storage.DeleteRegion(id)
	if err != nil {
		return errors.WrapErrorAction(logutils.ActionDelete, model.TypeRegion, &logutils.FieldArgs{"id": id}, err)
	}
	return app.writeAuditLog(nil, claims, "REGION_DELETED", string(model.TypeRegion), id, nil)
}

func (app *application) admCreateServiceCategory(name string, claims *tokenauth.Claims) (*model.ServiceCategory, error) {
	if name == "" {
		return nil, errors.ErrorData(logutils.StatusMissing, model.TypeServiceCategory, nil)
	}
	category := model.ServiceCategory{ID: uuid.NewString(), Name: name, DateCreated: time.Now().UTC()}
	err := app.storage.InsertServiceCategory(category)
	if err != nil {
		return nil, errors.WrapErrorAction(logutils.ActionInsert, model.TypeServiceCategory, nil, err)
	}
	err = app.writeAuditLog(nil, claims, "SERVICE_CATEGORY_CREATED", string(model.TypeServiceCategory), category.ID,
		map[string]interface{}{"name": name})
	if err != nil {
		return nil, err
	}
	return &category, nil
}

func (app *application) admDeleteServiceCategory(id string, claims *tokenauth.Claims) error {
	inUse, err := app.storage.CountServiceResourcesByCategory(id)
	if err != nil {
		return errors.WrapErrorAction(logutils.ActionCount, model.TypeServiceResource, &logutils.FieldArgs{"category_id": id}, err)
	}
	if inUse > 0 {
		return errors.ErrorData(logutils.StatusInvalid, model.TypeServiceCategory,
			&logutils.FieldArgs{"id": id, "resources": inUse}).SetStatus(utils.ErrorStatusInUse)
	}

	err = app.storage.DeleteServiceCategory(id)
	if err != nil {
		return errors.WrapErrorAction(logutils.ActionDelete, model.TypeServiceCategory, &logutils.FieldArgs{"id": id}, err)
	}
	return app.writeAuditLog(nil, claims, "SERVICE_CATEGORY_DELETED", string(model.TypeServiceCategory), id, nil)
}

func (app *application) admCreateServiceResource(name string, categoryID string, claims *tokenauth.Claims) (*model.ServiceResource, error) {
	if name == "" || categoryID == "" {
		return nil, errors.ErrorData(logutils.StatusMissing, model.TypeServiceResource,
			&logutils.FieldArgs{"name": name, "category_id": categoryID})
	}

	categories, err := app.storage.FindServiceCategories()
	if err != nil {
		return nil, errors.WrapErrorAction(logutils.ActionFind, model.TypeServiceCategory, nil, err)
	}
	found := false
	for _, category := range categories {
		if category.ID == categoryID {
			found = true
			break
		}
	}
	if !found {
		return nil, errors.ErrorData(logutils.StatusMissing, model.TypeServiceCategory,
			&logutils.FieldArgs{"id": categoryID}).SetStatus(utils.ErrorStatusNotFound)
	}

	resource := model.ServiceResource{ID: uuid.NewString(), Name: name, CategoryID: categoryID, DateCreated: time.Now().UTC()}
	err = app.storage.InsertServiceResource(resource)
	if err != nil {
		return nil, errors.WrapErrorAction(logutils.ActionInsert, model.TypeServiceResource, nil, err)
	}
	err = app.writeAuditLog(nil, claims, "SERVICE_RESOURCE_CREATED", string(model.TypeServiceResource), resource.ID,
		map[string]interface{}{"name": name, "category_id": categoryID})
	if err != nil {
		return nil, err
	}
	return &resource, nil
}

func (app *application) admDeleteServiceResource(id string, claims *tokenauth.Claims) error {
	inUse, err := app.storage.CountOrganizationsByResource(id)
	if err != nil {
		return errors.WrapErrorAction(logutils.ActionCount, model.TypeOrganization, &logutils.FieldArgs{"resource_id": id}, err)
	}
	if inUse > 0 {
		return errors.ErrorData(logutils.StatusInvalid, model.TypeServiceResource,
			&logutils.FieldArgs{"id": id, "organizations": inUse}).SetStatus(utils.ErrorStatusInUse)
	}

	err = app.storage.DeleteServiceResource(id)
	if err != nil {
		return errors.WrapErrorAction(logutils.ActionDelete, model.TypeServiceResource, &logutils.FieldArgs{"id": id}, err)
	}
	return app.writeAuditLog(nil, claims, "SERVICE_RESOURCE_DELETED", string(model.TypeServiceResource), id, nil)
}

func (app *application) admCreateFaith(name string, claims *tokenauth.Claims) (*model.Faith, error) {
	if name == "" {
		return nil, errors.ErrorData(logutils.StatusMissing, model.TypeFaith, nil)
	}
	faith := model.Faith{ID: uuid.NewString(), Name: name, DateCreated: time.Now().UTC()}
	err := app.storage.InsertFaith(faith)
	if err != nil {
		return nil, errors.WrapErrorAction(logutils.ActionInsert, model.TypeFaith, nil, err)
	}
	err = app.writeAuditLog(nil, claims, "FAITH_CREATED", string(model.TypeFaith), faith.ID,
		map[string]interface{}{"name": name})
	if err != nil {
		return nil, err
	}
	return &faith, nil
}

func (app *application) admDeleteFaith(id string, claims *tokenauth.Claims) error {
	err := app.storage.DeleteFaith(id)
	if err != nil {
		return errors.WrapErrorAction(logutils.ActionDelete, model.TypeFaith, &logutils.FieldArgs{"id": id}, err)
	}
	return app.writeAuditLog(nil, claims, "FAITH_DELETED", string(model.TypeFaith), id, nil)
}

func (app *application) admCreateSocialCategory(name string, claims *tokenauth.Claims) (*model.SocialCategory, error) {
	if name == "" {
		return nil, errors.ErrorData(logutils.StatusMissing, model.TypeSocialCategory, nil)
	}
	category := model.SocialCategory{ID: uuid.NewString(), Name: name, DateCreated: time.Now().UTC()}
	err := app.storage.InsertSocialCategory(category)
	if err != nil {
		return nil, errors.WrapErrorAction(logutils.ActionInsert, model.TypeSocialCategory, nil, err)
	}
	err = app.writeAuditLog(nil, claims, "SOCIAL_CATEGORY_CREATED", string(model.TypeSocialCategory), category.ID,
		map[string]interface{}{"name": name})
	if err != nil {
		return nil, err
	}
	return &category, nil
}

func (app *application) admDeleteSocialCategory(id string, claims *tokenauth.Claims) error {
	err := app.storage.DeleteSocialCategory(id)
	if err != nil {
		return errors.WrapErrorAction(logutils.ActionDelete, model.TypeSocialCategory, &logutils.FieldArgs{"id": id}, err)
	}
	return app.writeAuditLog(nil, claims, "SOCIAL_CATEGORY_DELETED", string(model.TypeSocialCategory), id, nil)
}
