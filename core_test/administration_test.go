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

package core_test

import (
	goerrors "errors"
	"testing"

	core "registry-building-block/core"
	"registry-building-block/core/model"
	genmocks "registry-building-block/mocks"
	"registry-building-block/utils"

	"github.com/rokwire/core-auth-library-go/v3/tokenauth"
	"github.com/rokwire/logging-library-go/v2/errors"
	"github.com/stretchr/testify/mock"
	"gotest.tools/assert"
)

func reviewerClaims() *tokenauth.Claims {
	claims := tokenauth.Claims{Permissions: core.PermissionReview, Name: "Priya Nair"}
	claims.Subject = "reviewer-1"
	return &claims
}

//errorStatus extracts the machine readable status tag, if the error carries one
func errorStatus(err error) string {
	var e *errors.Error
	if goerrors.As(err, &e) {
		return e.Status()
	}
	return ""
}

func TestAdmUpdateOrganizationStatusApprove(t *testing.T) {
	storage := genmocks.Storage{}
	pending := model.Organization{ID: "org-1", CustomID: "ORG00001", Status: model.OrgStatusPending}
	storage.On("FindOrganization", "org-1").Return(&pending, nil)
	runTransactions(&storage)
	storage.On("UpdateOrganizationStatus", mock.Anything, "org-1", model.OrgStatusApproved).Return(nil)
	var note model.ReviewNote
	storage.On("InsertReviewNote", mock.Anything, mock.AnythingOfType("model.ReviewNote")).Return(nil).Run(func(args mock.Arguments) {
		note = args.Get(1).(model.ReviewNote)
	})
	storage.On("InsertAuditLog", mock.Anything, mock.AnythingOfType("model.AuditLog")).Return(nil)

	app := core.NewCoreAPIs("local", "1.0.0", "build", &storage, nil)

	organization, err := app.Administration.AdmUpdateOrganizationStatus("org-1", model.OrgStatusApproved, "", reviewerClaims())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assert.Equal(t, organization.Status, model.OrgStatusApproved)
	//an approval with no note text still records the transition
	assert.Equal(t, note.Note, "")
	assert.Equal(t, note.StatusBefore, model.OrgStatusPending)
	assert.Equal(t, note.StatusAfter, model.OrgStatusApproved)
}

func TestAdmUpdateOrganizationStatusRejectWithNote(t *testing.T) {
	storage := genmocks.Storage{}
	pending := model.Organization{ID: "org-1", CustomID: "ORG00001", Status: model.OrgStatusPending}
	storage.On("FindOrganization", "org-1").Return(&pending, nil)
	runTransactions(&storage)
	storage.On("UpdateOrganizationStatus", mock.Anything, "org-1", model.OrgStatusRejected).Return(nil)
	var note model.ReviewNote
	storage.On("InsertReviewNote", mock.Anything, mock.AnythingOfType("model.ReviewNote")).Return(nil).Run(func(args mock.Arguments) {
		note = args.Get(1).(model.ReviewNote)
	})
	storage.On("InsertAuditLog", mock.Anything, mock.AnythingOfType("model.AuditLog")).Return(nil)

	app := core.NewCoreAPIs("local", "1.0.0", "build", &storage, nil)

	_, err := app.Administration.AdmUpdateOrganizationStatus("org-1", model.OrgStatusRejected, "Registration certificate is illegible", reviewerClaims())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assert.Equal(t, note.OrganizationID, "org-1")
	assert.Equal(t, note.ReviewerID, "reviewer-1")
	assert.Equal(t, note.StatusBefore, model.OrgStatusPending)
	assert.Equal(t, note.StatusAfter, model.OrgStatusRejected)
}

func TestAdmUpdateOrganizationStatusNoteRequired(t *testing.T) {
	storage := genmocks.Storage{}
	pending := model.Organization{ID: "org-1", Status: model.OrgStatusPending}
	storage.On("FindOrganization", "org-1").Return(&pending, nil)

	app := core.NewCoreAPIs("local", "1.0.0", "build", &storage, nil)

	_, err := app.Administration.AdmUpdateOrganizationStatus("org-1", model.OrgStatusRejected, "   ", reviewerClaims())
	if err == nil {
		t.Fatal("expected a note required error")
	}
	assert.Equal(t, errorStatus(err), utils.ErrorStatusNoteRequired)
	storage.AssertNotCalled(t, "PerformTransaction", mock.Anything)
}

func TestAdmUpdateOrganizationStatusReapprove(t *testing.T) {
	storage := genmocks.Storage{}
	rejected := model.Organization{ID: "org-1", CustomID: "ORG00001", Status: model.OrgStatusRejected}
	storage.On("FindOrganization", "org-1").Return(&rejected, nil)
	runTransactions(&storage)
	storage.On("UpdateOrganizationStatus", mock.Anything, "org-1", model.OrgStatusApproved).Return(nil)
	var note model.ReviewNote
	storage.On("InsertReviewNote", mock.Anything, mock.AnythingOfType("model.ReviewNote")).Return(nil).Run(func(args mock.Arguments) {
		note = args.Get(1).(model.ReviewNote)
	})
	storage.On("InsertAuditLog", mock.Anything, mock.AnythingOfType("model.AuditLog")).Return(nil)

	app := core.NewCoreAPIs("local", "1.0.0", "build", &storage, nil)

	organization, err := app.Administration.AdmUpdateOrganizationStatus("org-1", model.OrgStatusApproved, "Documents re-verified on appeal", reviewerClaims())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assert.Equal(t, organization.Status, model.OrgStatusApproved)
	assert.Equal(t, note.StatusBefore, model.OrgStatusRejected)
	assert.Equal(t, note.StatusAfter, model.OrgStatusApproved)
}

func TestAdmUpdateOrganizationStatusSameStatus(t *testing.T) {
	storage := genmocks.Storage{}
	approved := model.Organization{ID: "org-1", Status: model.OrgStatusApproved}
	storage.On("FindOrganization", "org-1").Return(&approved, nil)

	app := core.NewCoreAPIs("local", "1.0.0", "build", &storage, nil)

	_, err := app.Administration.AdmUpdateOrganizationStatus("org-1", model.OrgStatusApproved, "", reviewerClaims())
	if err == nil {
		t.Fatal("expected an invalid transition error")
	}
	assert.Equal(t, errorStatus(err), utils.ErrorStatusInvalidTransition)
	storage.AssertNotCalled(t, "PerformTransaction", mock.Anything)
}

func TestAdmUpdateOrganizationStatusUnknownOrganization(t *testing.T) {
	storage := genmocks.Storage{}
	storage.On("FindOrganization", "org-missing").Return(nil, nil)

	app := core.NewCoreAPIs("local", "1.0.0", "build", &storage, nil)

	_, err := app.Administration.AdmUpdateOrganizationStatus("org-missing", model.OrgStatusApproved, "", reviewerClaims())
	if err == nil {
		t.Fatal("expected a not found error")
	}
	assert.Equal(t, errorStatus(err), utils.ErrorStatusNotFound)
	storage.AssertNotCalled(t, "PerformTransaction", mock.Anything)
}

func TestAdmUpdateOrganizationStatusNoPermission(t *testing.T) {
	storage := genmocks.Storage{}
	app := core.NewCoreAPIs("local", "1.0.0", "build", &storage, nil)

	claims := tokenauth.Claims{Permissions: "get_some_other_data"}
	_, err := app.Administration.AdmUpdateOrganizationStatus("org-1", model.OrgStatusApproved, "", &claims)
	if err == nil {
		t.Fatal("expected a permission error")
	}
	storage.AssertNotCalled(t, "FindOrganization", mock.Anything)
}

func TestAdmCreateLanguage(t *testing.T) {
	storage := genmocks.Storage{}
	storage.On("FindLanguage", "ta").Return(nil, nil)
	runTransactions(&storage)
	var language model.Language
	storage.On("InsertLanguage", mock.Anything, mock.AnythingOfType("model.Language")).Return(nil).Run(func(args mock.Arguments) {
		language = args.Get(1).(model.Language)
	})
	storage.On("InsertAuditLog", mock.Anything, mock.AnythingOfType("model.AuditLog")).Return(nil)
	storage.On("RefreshCachedLanguages").Return(nil)

	app := core.NewCoreAPIs("local", "1.0.0", "build", &storage, nil)

	created, err := app.Administration.AdmCreateLanguage("TA", "Tamil", "தமிழ்", false, reviewerClaims())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assert.Equal(t, created.Code, "ta")
	assert.Equal(t, language.Active, false)
	//an inactive language fans out no jobs
	storage.AssertNotCalled(t, "InsertTranslationJobs", mock.Anything, mock.Anything)
	storage.AssertCalled(t, "RefreshCachedLanguages")
}

func TestAdmCreateLanguageDuplicate(t *testing.T) {
	storage := genmocks.Storage{}
	existing := model.Language{ID: "l1", Code: "hi", Name: "Hindi", Active: true}
	storage.On("FindLanguage", "hi").Return(&existing, nil)

	app := core.NewCoreAPIs("local", "1.0.0", "build", &storage, nil)

	_, err := app.Administration.AdmCreateLanguage("HI", "Hindi", "हिन्दी", true, reviewerClaims())
	if err == nil {
		t.Fatal("expected an already exists error")
	}
	assert.Equal(t, errorStatus(err), utils.ErrorStatusAlreadyExists)
}

func TestAdmSetLanguageStatusActivate(t *testing.T) {
	storage := genmocks.Storage{}
	inactive := model.Language{ID: "l1", Code: "hi", Name: "Hindi", Active: false}
	storage.On("FindLanguage", "hi").Return(&inactive, nil)
	runTransactions(&storage)
	storage.On("UpdateLanguageStatus", mock.Anything, "hi", true).Return(nil)
	storage.On("FindOrganizationIDsByStatus", model.OrgStatusApproved).Return([]string{"org-1", "org-2"}, nil)
	var jobs []model.TranslationJob
	storage.On("InsertTranslationJobs", mock.Anything, mock.AnythingOfType("[]model.TranslationJob")).Return(nil).Run(func(args mock.Arguments) {
		jobs = args.Get(1).([]model.TranslationJob)
	})
	storage.On("InsertAuditLog", mock.Anything, mock.AnythingOfType("model.AuditLog")).Return(nil)
	storage.On("RefreshCachedLanguages").Return(nil)

	app := core.NewCoreAPIs("local", "1.0.0", "build", &storage, nil)

	err := app.Administration.AdmSetLanguageStatus("hi", true, reviewerClaims())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assert.Equal(t, len(jobs), 2)
	for _, job := range jobs {
		assert.Equal(t, job.LanguageCode, "hi")
		assert.Equal(t, job.Status, model.TranslationStatusPending)
	}
	//the cache reload happens after the transaction commits
	storage.AssertCalled(t, "RefreshCachedLanguages")
}

func TestAdmSetLanguageStatusDeactivate(t *testing.T) {
	storage := genmocks.Storage{}
	active := model.Language{ID: "l1", Code: "hi", Name: "Hindi", Active: true}
	storage.On("FindLanguage", "hi").Return(&active, nil)
	runTransactions(&storage)
	storage.On("UpdateLanguageStatus", mock.Anything, "hi", false).Return(nil)
	storage.On("CancelPendingTranslationJobs", mock.Anything, "hi").Return(int64(3), nil)
	storage.On("InsertAuditLog", mock.Anything, mock.AnythingOfType("model.AuditLog")).Return(nil)
	storage.On("RefreshCachedLanguages").Return(nil)

	app := core.NewCoreAPIs("local", "1.0.0", "build", &storage, nil)

	err := app.Administration.AdmSetLanguageStatus("hi", false, reviewerClaims())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	storage.AssertCalled(t, "CancelPendingTranslationJobs", mock.Anything, "hi")
	storage.AssertNotCalled(t, "InsertTranslationJobs", mock.Anything, mock.Anything)
	storage.AssertCalled(t, "RefreshCachedLanguages")
}

func TestAdmSetLanguageStatusNoChange(t *testing.T) {
	storage := genmocks.Storage{}
	active := model.Language{ID: "l1", Code: "hi", Name: "Hindi", Active: true}
	storage.On("FindLanguage", "hi").Return(&active, nil)

	app := core.NewCoreAPIs("local", "1.0.0", "build", &storage, nil)

	err := app.Administration.AdmSetLanguageStatus("hi", true, reviewerClaims())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	storage.AssertNotCalled(t, "PerformTransaction", mock.Anything)
	storage.AssertNotCalled(t, "RefreshCachedLanguages")
}

func TestAdmDeleteLanguageInUse(t *testing.T) {
	storage := genmocks.Storage{}
	language := model.Language{ID: "l1", Code: "hi", Name: "Hindi"}
	storage.On("FindLanguage", "hi").Return(&language, nil)
	storage.On("CountTranslationJobs", "hi", (*model.TranslationStatus)(nil)).Return(int64(5), nil)

	app := core.NewCoreAPIs("local", "1.0.0", "build", &storage, nil)

	err := app.Administration.AdmDeleteLanguage("hi", reviewerClaims())
	if err == nil {
		t.Fatal("expected an in use error")
	}
	assert.Equal(t, errorStatus(err), utils.ErrorStatusInUse)
	storage.AssertNotCalled(t, "DeleteLanguage", mock.Anything)
}

func TestAdmGetLanguageCoverage(t *testing.T) {
	storage := genmocks.Storage{}
	language := model.Language{ID: "l1", Code: "hi", Name: "Hindi", Active: true}
	storage.On("FindLanguage", "hi").Return(&language, nil)
	storage.On("CountOrganizationsByStatus", model.OrgStatusApproved).Return(int64(3), nil)
	reviewed := model.TranslationStatusReviewed
	storage.On("CountTranslationJobs", "hi", &reviewed).Return(int64(1), nil)

	app := core.NewCoreAPIs("local", "1.0.0", "build", &storage, nil)

	coverage, err := app.Administration.AdmGetLanguageCoverage("hi")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assert.Equal(t, coverage.ApprovedOrganizations, int64(3))
	assert.Equal(t, coverage.ReviewedJobs, int64(1))
	assert.Equal(t, coverage.Percent, 33)
}

func TestAdmGetLanguageCoverageNoApproved(t *testing.T) {
	storage := genmocks.Storage{}
	language := model.Language{ID: "l1", Code: "hi", Name: "Hindi", Active: true}
	storage.On("FindLanguage", "hi").Return(&language, nil)
	storage.On("CountOrganizationsByStatus", model.OrgStatusApproved).Return(int64(0), nil)
	reviewed := model.TranslationStatusReviewed
	storage.On("CountTranslationJobs", "hi", &reviewed).Return(int64(0), nil)

	app := core.NewCoreAPIs("local", "1.0.0", "build", &storage, nil)

	coverage, err := app.Administration.AdmGetLanguageCoverage("hi")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assert.Equal(t, coverage.Percent, 0)
}

func TestAdmUpsertFieldTranslationPromotesJob(t *testing.T) {
	storage := genmocks.Storage{}
	job := model.TranslationJob{ID: "job-1", OrganizationID: "org-1", LanguageCode: "hi", Status: model.TranslationStatusPending}
	storage.On("FindTranslationJob", "org-1", "hi").Return(&job, nil)
	lang := "hi"
	existing := []model.OrganizationTranslation{
		{ID: "tr-about", OrganizationID: "org-1", LanguageCode: "hi", FieldName: "about", Status: model.TranslationStatusReviewed},
	}
	storage.On("FindOrganizationTranslations", "org-1", &lang).Return(existing, nil)
	runTransactions(&storage)
	stored := model.OrganizationTranslation{ID: "tr-name", OrganizationID: "org-1", LanguageCode: "hi",
		FieldName: "name", TranslatedText: "सहायता हाथ", Status: model.TranslationStatusReviewed}
	storage.On("UpsertOrganizationTranslation", mock.Anything, mock.AnythingOfType("model.OrganizationTranslation")).Return(&stored, nil)
	storage.On("UpdateTranslationJobStatus", mock.Anything, "job-1", model.TranslationStatusReviewed).Return(nil)
	storage.On("InsertAuditLog", mock.Anything, mock.AnythingOfType("model.AuditLog")).Return(nil)

	app := core.NewCoreAPIs("local", "1.0.0", "build", &storage, nil)

	translation, err := app.Administration.AdmUpsertFieldTranslation("org-1", "hi", "name", "सहायता हाथ", reviewerClaims())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assert.Equal(t, translation.ID, "tr-name")
	storage.AssertCalled(t, "UpdateTranslationJobStatus", mock.Anything, "job-1", model.TranslationStatusReviewed)
}

func TestAdmUpsertFieldTranslationPartial(t *testing.T) {
	storage := genmocks.Storage{}
	job := model.TranslationJob{ID: "job-1", OrganizationID: "org-1", LanguageCode: "hi", Status: model.TranslationStatusPending}
	storage.On("FindTranslationJob", "org-1", "hi").Return(&job, nil)
	lang := "hi"
	storage.On("FindOrganizationTranslations", "org-1", &lang).Return([]model.OrganizationTranslation{}, nil)
	runTransactions(&storage)
	stored := model.OrganizationTranslation{ID: "tr-name", OrganizationID: "org-1", LanguageCode: "hi", FieldName: "name"}
	storage.On("UpsertOrganizationTranslation", mock.Anything, mock.AnythingOfType("model.OrganizationTranslation")).Return(&stored, nil)
	storage.On("InsertAuditLog", mock.Anything, mock.AnythingOfType("model.AuditLog")).Return(nil)

	app := core.NewCoreAPIs("local", "1.0.0", "build", &storage, nil)

	_, err := app.Administration.AdmUpsertFieldTranslation("org-1", "hi", "name", "सहायता हाथ", reviewerClaims())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	storage.AssertNotCalled(t, "UpdateTranslationJobStatus", mock.Anything, mock.Anything, mock.Anything)
}

func TestAdmUpsertFieldTranslationCancelledJob(t *testing.T) {
	storage := genmocks.Storage{}
	job := model.TranslationJob{ID: "job-1", OrganizationID: "org-1", LanguageCode: "hi", Status: model.TranslationStatusCancelled}
	storage.On("FindTranslationJob", "org-1", "hi").Return(&job, nil)

	app := core.NewCoreAPIs("local", "1.0.0", "build", &storage, nil)

	_, err := app.Administration.AdmUpsertFieldTranslation("org-1", "hi", "name", "सहायता हाथ", reviewerClaims())
	if err == nil {
		t.Fatal("expected an error for a cancelled job")
	}
	storage.AssertNotCalled(t, "PerformTransaction", mock.Anything)
}

func TestAdmUpsertFieldTranslationUnknownField(t *testing.T) {
	storage := genmocks.Storage{}
	app := core.NewCoreAPIs("local", "1.0.0", "build", &storage, nil)

	_, err := app.Administration.AdmUpsertFieldTranslation("org-1", "hi", "registration_number", "x", reviewerClaims())
	if err == nil {
		t.Fatal("expected an error for a non translatable field")
	}
	storage.AssertNotCalled(t, "FindTranslationJob", mock.Anything, mock.Anything)
}

func TestAdmDeleteRegionInUse(t *testing.T) {
	storage := genmocks.Storage{}
	region := model.Region{ID: "region-1", State: "Karnataka", City: "Bengaluru"}
	storage.On("FindRegion", "region-1").Return(&region, nil)
	storage.On("CountBranchesByRegion", "region-1").Return(int64(2), nil)

	app := core.NewCoreAPIs("local", "1.0.0", "build", &storage, nil)

	err := app.Administration.AdmDeleteRegion("region-1", reviewerClaims())
	if err == nil {
		t.Fatal("expected an in use error")
	}
	assert.Equal(t, errorStatus(err), utils.ErrorStatusInUse)
	storage.AssertNotCalled(t, "DeleteRegion", mock.Anything)
}

func TestAdmDeleteServiceCategoryWithResources(t *testing.T) {
	storage := genmocks.Storage{}
	storage.On("CountServiceResourcesByCategory", "cat-1").Return(int64(1), nil)

	app := core.NewCoreAPIs("local", "1.0.0", "build", &storage, nil)

	err := app.Administration.AdmDeleteServiceCategory("cat-1", reviewerClaims())
	if err == nil {
		t.Fatal("expected an in use error")
	}
	assert.Equal(t, errorStatus(err), utils.ErrorStatusInUse)
	storage.AssertNotCalled(t, "DeleteServiceCategory", mock.Anything)
}

func TestAdmDeleteServiceResourceReferenced(t *testing.T) {
	storage := genmocks.Storage{}
	storage.On("CountOrganizationsByResource", "res-1").Return(int64(4), nil)

	app := core.NewCoreAPIs("local", "1.0.0", "build", &storage, nil)

	err := app.Administration.AdmDeleteServiceResource("res-1", reviewerClaims())
	if err == nil {
		t.Fatal("expected an in use error")
	}
	assert.Equal(t, errorStatus(err), utils.ErrorStatusInUse)
	storage.AssertNotCalled(t, "DeleteServiceResource", mock.Anything)
}
