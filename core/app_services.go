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
	"fmt"
	"regexp"
	"strings"
	"time"

	"registry-building-block/core/model"
	"registry-building-block/driven/storage"
	"registry-building-block/utils"

	"github.com/google/uuid"
	"github.com/rokwire/logging-library-go/v2/errors"
	"github.com/rokwire/logging-library-go/v2/logutils"
	"gopkg.in/go-playground/validator.v9"
)

var phonePattern = regexp.MustCompile(`^[6-9][0-9]{9}$`)

//serRegisterOrganization validates the intake payload and, if it is clean, creates the
//organization atomically - the custom id allocation and the insert share one transaction
//so a failed insert never burns a sequence number.
func (app *application) serRegisterOrganization(registration model.OrganizationRegistration) (*model.Organization, []model.FieldError, error) {
	fieldErrors := app.validateRegistration(registration)
	if len(fieldErrors) > 0 {
		return nil, fieldErrors, nil
	}

	//checks that need the database run outside the transaction - they only read reference data
	fieldErrors, parent, err := app.checkRegistrationReferences(registration)
	if err != nil {
		return nil, nil, err
	}
	if len(fieldErrors) > 0 {
		return nil, fieldErrors, nil
	}

	var organization *model.Organization
	transaction := func(context storage.TransactionContext) error {
		customID, err := app.allocateCustomID(context, parent)
		if err != nil {
			return errors.WrapErrorAction("allocating", model.TypeCustomID, nil, err)
		}

		now := time.Now().UTC()
		org := buildOrganization(registration, customID, now)
		err = app.storage.InsertOrganization(context, org)
		if err != nil {
			return errors.WrapErrorAction(logutils.ActionInsert, model.TypeOrganization, nil, err)
		}

		err = app.writeAuditLog(context, nil, "ORG_SUBMITTED", string(model.TypeOrganization), org.ID,
			map[string]interface{}{"custom_id": org.CustomID})
		if err != nil {
			return errors.WrapErrorAction(logutils.ActionInsert, model.TypeAuditLog, nil, err)
		}

		organization = &org
		return nil
	}

	err = app.storage.PerformTransaction(transaction)
	if err != nil {
		return nil, nil, errors.WrapErrorAction("registering", model.TypeOrganization, nil, err)
	}
	return organization, nil, nil
}

//allocateCustomID draws the next sequence from the right counter and formats the id.
//Top level organizations get ORG ids; organizations registered under a parent get
//BR ids scoped to the parent's number.
func (app *application) allocateCustomID(context storage.TransactionContext, parent *model.Organization) (string, error) {
	if parent == nil {
		sequence, err := app.storage.AllocateOrganizationSequence(context)
		if err != nil {
			return "", err
		}
		return model.OrganizationCustomID(sequence)
	}

	sequence, err := app.storage.AllocateBranchSequence(context, parent.CustomID)
	if err != nil {
		return "", err
	}
	if sequence > model.MaxBranchesPerOrganization {
		return "", errors.ErrorData(logutils.StatusInvalid, model.TypeCustomID,
			&logutils.FieldArgs{"parent": parent.CustomID, "sequence": sequence}).SetStatus(utils.ErrorStatusBranchCapacity)
	}
	return model.BranchCustomID(parent.CustomID, sequence)
}

//validateRegistration runs the declarative tags plus the business rules that need no database
func (app *application) validateRegistration(registration model.OrganizationRegistration) []model.FieldError {
	fieldErrors := []model.FieldError{}

	err := app.validate.Struct(registration)
	if err != nil {
		if validationErrors, ok := err.(validator.ValidationErrors); ok {
			for _, ve := range validationErrors {
				field := strings.TrimPrefix(ve.Namespace(), "OrganizationRegistration.")
				fieldErrors = append(fieldErrors, model.FieldError{Field: field,
					Message: fmt.Sprintf("failed '%s' validation", ve.Tag())})
			}
		} else {
			fieldErrors = append(fieldErrors, model.FieldError{Field: "", Message: err.Error()})
		}
	}

	if !utils.Contains(model.RegistrationTypes, registration.RegistrationType) {
		fieldErrors = append(fieldErrors, model.FieldError{Field: "registration_type",
			Message: fmt.Sprintf("must be one of %s", strings.Join(model.RegistrationTypes, ", "))})
	}

	if registration.YearEstablished > time.Now().UTC().Year() {
		fieldErrors = append(fieldErrors, model.FieldError{Field: "year_established", Message: "cannot be in the future"})
	}

	primaryCount := 0
	for i, contact := range registration.Contacts {
		if contact.Primary {
			primaryCount++
		}
		if contact.Phone != "" && !phonePattern.MatchString(contact.Phone) {
			fieldErrors = append(fieldErrors, model.FieldError{Field: fmt.Sprintf("contacts[%d].phone", i),
				Message: "must be a 10 digit number starting with 6-9"})
		}
	}
	if primaryCount != 1 {
		fieldErrors = append(fieldErrors, model.FieldError{Field: "contacts", Message: "exactly one contact must be primary"})
	}

	if len(registration.Branches) > model.MaxBranchesPerOrganization {
		fieldErrors = append(fieldErrors, model.FieldError{Field: "branches",
			Message: fmt.Sprintf("at most %d branches are supported", model.MaxBranchesPerOrganization)})
	}
	for i, branch := range registration.Branches {
		fieldErrors = append(fieldErrors, validateTimings(branch.Timings, fmt.Sprintf("branches[%d]", i))...)
	}

	return fieldErrors
}

//validateTimings checks one branch's weekly schedule: every weekday exactly once,
//and open strictly before close on open days
func validateTimings(timings []model.RegistrationTiming, prefix string) []model.FieldError {
	fieldErrors := []model.FieldError{}
	seen := map[int]bool{}
	for i, timing := range timings {
		field := fmt.Sprintf("%s.timings[%d]", prefix, i)
		if seen[timing.Day] {
			fieldErrors = append(fieldErrors, model.FieldError{Field: field, Message: "duplicate day"})
			continue
		}
		seen[timing.Day] = true

		if timing.IsClosed {
			continue
		}
		open, errOpen := time.Parse("15:04", timing.Open)
		close, errClose := time.Parse("15:04", timing.Close)
		if errOpen != nil || errClose != nil {
			fieldErrors = append(fieldErrors, model.FieldError{Field: field, Message: "open and close must be HH:MM"})
			continue
		}
		if !open.Before(close) {
			fieldErrors = append(fieldErrors, model.FieldError{Field: field, Message: "open must be before close"})
		}
	}
	return fieldErrors
}

//checkRegistrationReferences verifies the payload against the reference data and the
//existing organizations. Returns the parent organization when the registration is a branch.
func (app *application) checkRegistrationReferences(registration model.OrganizationRegistration) ([]model.FieldError, *model.Organization, error) {
	fieldErrors := []model.FieldError{}

	//active languages
	languages, err := app.storage.FindLanguages(true)
	if err != nil {
		return nil, nil, errors.WrapErrorAction(logutils.ActionFind, model.TypeLanguage, nil, err)
	}
	activeCodes := map[string]bool{}
	for _, language := range languages {
		activeCodes[language.Code] = true
	}
	for i, code := range registration.LanguageCodes {
		if !activeCodes[code] {
			fieldErrors = append(fieldErrors, model.FieldError{Field: fmt.Sprintf("language_codes[%d]", i),
				Message: "not an active language"})
		}
	}

	//regions
	regions, err := app.storage.FindRegions()
	if err != nil {
		return nil, nil, errors.WrapErrorAction(logutils.ActionFind, model.TypeRegion, nil, err)
	}
	regionIDs := map[string]bool{}
	for _, region := range regions {
		regionIDs[region.ID] = true
	}
	for i, branch := range registration.Branches {
		if !regionIDs[branch.RegionID] {
			fieldErrors = append(fieldErrors, model.FieldError{Field: fmt.Sprintf("branches[%d].region_id", i),
				Message: "unknown region"})
		}
	}

	//categories and resources - every selected resource must belong to a selected category
	categories, err := app.storage.FindServiceCategories()
	if err != nil {
		return nil, nil, errors.WrapErrorAction(logutils.ActionFind, model.TypeServiceCategory, nil, err)
	}
	categoryIDs := map[string]bool{}
	for _, category := range categories {
		categoryIDs[category.ID] = true
	}
	selectedCategories := map[string]bool{}
	for i, id := range registration.CategoryIDs {
		if !categoryIDs[id] {
			fieldErrors = append(fieldErrors, model.FieldError{Field: fmt.Sprintf("category_ids[%d]", i),
				Message: "unknown service category"})
			continue
		}
		selectedCategories[id] = true
	}
	if len(registration.ResourceIDs) > 0 {
		resources, err := app.storage.FindServiceResourcesByIDs(registration.ResourceIDs)
		if err != nil {
			return nil, nil, errors.WrapErrorAction(logutils.ActionFind, model.TypeServiceResource, nil, err)
		}
		resourcesByID := map[string]model.ServiceResource{}
		for _, resource := range resources {
			resourcesByID[resource.ID] = resource
		}
		for i, id := range registration.ResourceIDs {
			resource, ok := resourcesByID[id]
			if !ok {
				fieldErrors = append(fieldErrors, model.FieldError{Field: fmt.Sprintf("resource_ids[%d]", i),
					Message: "unknown service resource"})
				continue
			}
			if !selectedCategories[resource.CategoryID] {
				fieldErrors = append(fieldErrors, model.FieldError{Field: fmt.Sprintf("resource_ids[%d]", i),
					Message: "resource does not belong to a selected category"})
			}
		}
	}

	//duplicate name within any of the branch cities - the comparison is case insensitive
	nameLower := strings.ToLower(registration.Name)
	for _, branch := range registration.Branches {
		existing, err := app.storage.FindOrganizationByNameAndCity(nameLower, branch.City)
		if err != nil {
			return nil, nil, errors.WrapErrorAction(logutils.ActionFind, model.TypeOrganization, nil, err)
		}
		if existing != nil {
			fieldErrors = append(fieldErrors, model.FieldError{Field: "name",
				Message: fmt.Sprintf("an organization with this name already exists in %s", branch.City)})
			break
		}
	}

	//parent - a branch registration hangs off an approved organization
	var parent *model.Organization
	if registration.ParentID != nil {
		parent, err = app.storage.FindOrganization(*registration.ParentID)
		if err != nil {
			return nil, nil, errors.WrapErrorAction(logutils.ActionFind, model.TypeOrganization,
				&logutils.FieldArgs{"id": *registration.ParentID}, err)
		}
		if parent == nil {
			fieldErrors = append(fieldErrors, model.FieldError{Field: "parent_id", Message: "unknown organization"})
		} else if parent.Status != model.OrgStatusApproved {
			fieldErrors = append(fieldErrors, model.FieldError{Field: "parent_id", Message: "parent organization is not approved"})
			parent = nil
		}
	}

	return fieldErrors, parent, nil
}

//buildOrganization materializes the stored document from a clean intake payload
func buildOrganization(registration model.OrganizationRegistration, customID string, now time.Time) model.Organization {
	contacts := make([]model.Contact, len(registration.Contacts))
	for i, contact := range registration.Contacts {
		contacts[i] = model.Contact{ID: uuid.NewString(), Name: contact.Name, Phone: contact.Phone,
			Email: contact.Email, Primary: contact.Primary}
	}

	branches := make([]model.Branch, len(registration.Branches))
	for i, branch := range registration.Branches {
		timings := make([]model.DayTiming, len(branch.Timings))
		for j, timing := range branch.Timings {
			timings[j] = model.DayTiming{Day: time.Weekday(timing.Day), IsClosed: timing.IsClosed,
				Open: timing.Open, Close: timing.Close}
		}
		branches[i] = model.Branch{ID: uuid.NewString(), AddressLine1: branch.AddressLine1,
			AddressLine2: branch.AddressLine2, RegionID: branch.RegionID, City: branch.City,
			PINCode: branch.PINCode, Timings: timings}
	}

	documents := []model.Document{{ID: uuid.NewString(), Kind: model.DocumentRegistrationCertificate,
		URL: registration.Documents.RegistrationCertificateURL}}
	if registration.Documents.LogoURL != "" {
		documents = append(documents, model.Document{ID: uuid.NewString(), Kind: model.DocumentLogo,
			URL: registration.Documents.LogoURL})
	}
	for _, url := range registration.Documents.AdditionalCertificateURLs {
		documents = append(documents, model.Document{ID: uuid.NewString(), Kind: model.DocumentAdditionalCertificate, URL: url})
	}

	return model.Organization{ID: uuid.NewString(), CustomID: customID, Name: registration.Name,
		NameLower: strings.ToLower(registration.Name),
		About: registration.About, RegistrationType: registration.RegistrationType,
		RegistrationNumber: registration.RegistrationNumber, YearEstablished: registration.YearEstablished,
		ParentID: registration.ParentID, Status: model.OrgStatusPending, Contacts: contacts,
		Branches: branches, CategoryIDs: registration.CategoryIDs, ResourceIDs: registration.ResourceIDs,
		LanguageCodes: registration.LanguageCodes, Documents: documents, DateCreated: now}
}

//serGetOrganization gives an organization to the public portal - approved listings only
func (app *application) serGetOrganization(id string) (*model.Organization, error) {
	organization, err := app.storage.FindOrganization(id)
	if err != nil {
		return nil, errors.WrapErrorAction(logutils.ActionFind, model.TypeOrganization, &logutils.FieldArgs{"id": id}, err)
	}
	if organization == nil || organization.Status != model.OrgStatusApproved {
		return nil, nil
	}
	return organization, nil
}

func (app *application) serGetLanguages() ([]model.Language, error) {
	return app.storage.FindLanguages(true)
}

func (app *application) serGetRegions() ([]model.Region, error) {
	return app.storage.FindRegions()
}

func (app *application) serGetServiceCategories() ([]model.ServiceCategory, error) {
	return app.storage.FindServiceCategories()
}

func (app *application) serGetServiceResources(categoryID *string) ([]model.ServiceResource, error) {
	return app.storage.FindServiceResources(categoryID)
}

func (app *application) serGetFaiths() ([]model.Faith, error) {
	return app.storage.FindFaiths()
}

func (app *application) serGetSocialCategories() ([]model.SocialCategory, error) {
	return app.storage.FindSocialCategories()
}
