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
	"testing"

	core "registry-building-block/core"
	"registry-building-block/core/model"
	stg "registry-building-block/driven/storage"
	genmocks "registry-building-block/mocks"

	"github.com/stretchr/testify/mock"
	"gotest.tools/assert"
)

//runTransactions makes PerformTransaction execute the given transaction directly
func runTransactions(storage *genmocks.Storage) {
	storage.On("PerformTransaction", mock.Anything).Return(func(transaction func(stg.TransactionContext) error) error {
		return transaction(nil)
	})
}

//referenceMocks stubs the reference data reads the intake checks depend on
func referenceMocks(storage *genmocks.Storage) {
	storage.On("FindLanguages", true).Return([]model.Language{{ID: "l1", Code: "en", Name: "English", Active: true}}, nil)
	storage.On("FindRegions").Return([]model.Region{{ID: "region-1", State: "Karnataka", City: "Bengaluru"}}, nil)
	storage.On("FindServiceCategories").Return([]model.ServiceCategory{{ID: "cat-1", Name: "Food"}}, nil)
}

func validRegistration() model.OrganizationRegistration {
	timings := make([]model.RegistrationTiming, 7)
	for day := 0; day < 7; day++ {
		timings[day] = model.RegistrationTiming{Day: day, IsClosed: day == 0, Open: "09:00", Close: "17:00"}
	}
	return model.OrganizationRegistration{
		Name:               "Helping Hands",
		About:              "Community kitchen and shelter",
		RegistrationType:   model.RegistrationTypeNGO,
		RegistrationNumber: "NGO-2017-0042",
		YearEstablished:    2017,
		Contacts: []model.RegistrationContact{
			{Name: "Asha Rao", Phone: "9876543210", Email: "asha@helpinghands.org", Primary: true},
		},
		Branches: []model.RegistrationBranch{
			{AddressLine1: "12 MG Road", RegionID: "region-1", City: "Bengaluru", PINCode: "560001", Timings: timings},
		},
		CategoryIDs:   []string{"cat-1"},
		LanguageCodes: []string{"en"},
		Documents:     model.RegistrationDocuments{RegistrationCertificateURL: "https://docs.example.org/cert.pdf"},
	}
}

func TestSerRegisterOrganization(t *testing.T) {
	storage := genmocks.Storage{}
	referenceMocks(&storage)
	storage.On("FindOrganizationByNameAndCity", "helping hands", "Bengaluru").Return(nil, nil)
	runTransactions(&storage)
	storage.On("AllocateOrganizationSequence", mock.Anything).Return(1, nil)
	storage.On("InsertOrganization", mock.Anything, mock.AnythingOfType("model.Organization")).Return(nil)
	storage.On("InsertAuditLog", mock.Anything, mock.AnythingOfType("model.AuditLog")).Return(nil)

	app := core.NewCoreAPIs("local", "1.0.0", "build", &storage, nil)

	organization, fieldErrors, err := app.Services.SerRegisterOrganization(validRegistration())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(fieldErrors) != 0 {
		t.Fatalf("unexpected field errors: %v", fieldErrors)
	}
	if organization == nil {
		t.Fatal("organization is nil")
	}
	assert.Equal(t, organization.CustomID, "ORG00001")
	assert.Equal(t, organization.Status, model.OrgStatusPending)
	assert.Equal(t, organization.NameLower, "helping hands")
	assert.Equal(t, len(organization.Documents), 1)
	storage.AssertCalled(t, "InsertOrganization", mock.Anything, mock.AnythingOfType("model.Organization"))
}

func TestSerRegisterOrganizationValidation(t *testing.T) {
	storage := genmocks.Storage{}
	app := core.NewCoreAPIs("local", "1.0.0", "build", &storage, nil)

	registration := validRegistration()
	registration.Contacts[0].Primary = false
	registration.Contacts[0].Phone = "1234567890" //bad prefix
	registration.YearEstablished = 2100

	organization, fieldErrors, err := app.Services.SerRegisterOrganization(registration)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if organization != nil {
		t.Fatal("organization must not be created")
	}
	if len(fieldErrors) < 3 {
		t.Fatalf("expected at least 3 field errors, got %v", fieldErrors)
	}
	fields := map[string]bool{}
	for _, fe := range fieldErrors {
		fields[fe.Field] = true
	}
	for _, field := range []string{"contacts", "contacts[0].phone", "year_established"} {
		if !fields[field] {
			t.Errorf("missing field error for %s in %v", field, fieldErrors)
		}
	}
	storage.AssertNotCalled(t, "PerformTransaction", mock.Anything)
}

func TestSerRegisterOrganizationDuplicateName(t *testing.T) {
	storage := genmocks.Storage{}
	referenceMocks(&storage)
	existing := model.Organization{ID: "org-9", Name: "Helping Hands"}
	storage.On("FindOrganizationByNameAndCity", "helping hands", "Bengaluru").Return(&existing, nil)

	app := core.NewCoreAPIs("local", "1.0.0", "build", &storage, nil)

	organization, fieldErrors, err := app.Services.SerRegisterOrganization(validRegistration())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if organization != nil {
		t.Fatal("organization must not be created")
	}
	if len(fieldErrors) != 1 || fieldErrors[0].Field != "name" {
		t.Fatalf("expected a single name error, got %v", fieldErrors)
	}
	storage.AssertNotCalled(t, "PerformTransaction", mock.Anything)
}

func TestSerRegisterOrganizationDuplicateNameCaseInsensitive(t *testing.T) {
	storage := genmocks.Storage{}
	referenceMocks(&storage)
	existing := model.Organization{ID: "org-9", Name: "Helping Hands"}
	storage.On("FindOrganizationByNameAndCity", "helping hands", "Bengaluru").Return(&existing, nil)

	app := core.NewCoreAPIs("local", "1.0.0", "build", &storage, nil)

	registration := validRegistration()
	registration.Name = "HELPING HANDS"

	organization, fieldErrors, err := app.Services.SerRegisterOrganization(registration)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if organization != nil {
		t.Fatal("organization must not be created")
	}
	if len(fieldErrors) != 1 || fieldErrors[0].Field != "name" {
		t.Fatalf("expected a single name error, got %v", fieldErrors)
	}
	storage.AssertNotCalled(t, "PerformTransaction", mock.Anything)
}

func TestSerRegisterOrganizationBranch(t *testing.T) {
	storage := genmocks.Storage{}
	referenceMocks(&storage)
	storage.On("FindOrganizationByNameAndCity", "helping hands", "Bengaluru").Return(nil, nil)
	parent := model.Organization{ID: "parent-1", CustomID: "ORG00007", Status: model.OrgStatusApproved}
	storage.On("FindOrganization", "parent-1").Return(&parent, nil)
	runTransactions(&storage)
	storage.On("AllocateBranchSequence", mock.Anything, "ORG00007").Return(3, nil)
	storage.On("InsertOrganization", mock.Anything, mock.AnythingOfType("model.Organization")).Return(nil)
	storage.On("InsertAuditLog", mock.Anything, mock.AnythingOfType("model.AuditLog")).Return(nil)

	app := core.NewCoreAPIs("local", "1.0.0", "build", &storage, nil)

	registration := validRegistration()
	parentID := "parent-1"
	registration.ParentID = &parentID

	organization, fieldErrors, err := app.Services.SerRegisterOrganization(registration)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(fieldErrors) != 0 {
		t.Fatalf("unexpected field errors: %v", fieldErrors)
	}
	assert.Equal(t, organization.CustomID, "BR00007c")
}

func TestSerRegisterOrganizationBranchCapacity(t *testing.T) {
	storage := genmocks.Storage{}
	referenceMocks(&storage)
	storage.On("FindOrganizationByNameAndCity", "helping hands", "Bengaluru").Return(nil, nil)
	parent := model.Organization{ID: "parent-1", CustomID: "ORG00007", Status: model.OrgStatusApproved}
	storage.On("FindOrganization", "parent-1").Return(&parent, nil)
	runTransactions(&storage)
	storage.On("AllocateBranchSequence", mock.Anything, "ORG00007").Return(27, nil)

	app := core.NewCoreAPIs("local", "1.0.0", "build", &storage, nil)

	registration := validRegistration()
	parentID := "parent-1"
	registration.ParentID = &parentID

	organization, _, err := app.Services.SerRegisterOrganization(registration)
	if err == nil {
		t.Fatal("expected a capacity error")
	}
	if organization != nil {
		t.Fatal("organization must not be created")
	}
	storage.AssertNotCalled(t, "InsertOrganization", mock.Anything, mock.Anything)
}

func TestSerRegisterOrganizationUnapprovedParent(t *testing.T) {
	storage := genmocks.Storage{}
	referenceMocks(&storage)
	storage.On("FindOrganizationByNameAndCity", "helping hands", "Bengaluru").Return(nil, nil)
	parent := model.Organization{ID: "parent-1", CustomID: "ORG00007", Status: model.OrgStatusPending}
	storage.On("FindOrganization", "parent-1").Return(&parent, nil)

	app := core.NewCoreAPIs("local", "1.0.0", "build", &storage, nil)

	registration := validRegistration()
	parentID := "parent-1"
	registration.ParentID = &parentID

	organization, fieldErrors, err := app.Services.SerRegisterOrganization(registration)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if organization != nil {
		t.Fatal("organization must not be created")
	}
	if len(fieldErrors) != 1 || fieldErrors[0].Field != "parent_id" {
		t.Fatalf("expected a single parent_id error, got %v", fieldErrors)
	}
}

func TestSerGetOrganization(t *testing.T) {
	storage := genmocks.Storage{}
	approved := model.Organization{ID: "org-1", Status: model.OrgStatusApproved}
	pending := model.Organization{ID: "org-2", Status: model.OrgStatusPending}
	storage.On("FindOrganization", "org-1").Return(&approved, nil)
	storage.On("FindOrganization", "org-2").Return(&pending, nil)
	storage.On("FindOrganization", "org-3").Return(nil, nil)

	app := core.NewCoreAPIs("local", "1.0.0", "build", &storage, nil)

	organization, err := app.Services.SerGetOrganization("org-1")
	if err != nil || organization == nil {
		t.Fatalf("expected the approved organization, got %v %v", organization, err)
	}

	organization, err = app.Services.SerGetOrganization("org-2")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if organization != nil {
		t.Error("pending organizations must not be exposed publicly")
	}

	organization, err = app.Services.SerGetOrganization("org-3")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if organization != nil {
		t.Error("missing organizations must give nil")
	}
}
