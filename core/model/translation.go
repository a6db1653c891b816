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

package model

import (
	"fmt"
	"time"

	"github.com/rokwire/logging-library-go/v2/logutils"
)

const (
	//TypeLanguage language type
	TypeLanguage logutils.MessageDataType = "language"
	//TypeTranslationJob translation job type
	TypeTranslationJob logutils.MessageDataType = "translation job"
	//TypeOrganizationTranslation organization translation type
	TypeOrganizationTranslation logutils.MessageDataType = "organization translation"
	//TypeLanguageCoverage language coverage type
	TypeLanguageCoverage logutils.MessageDataType = "language coverage"
)

//Language is a reference entity with an activation flag
type Language struct {
	ID         string `json:"id" bson:"_id"`
	Code       string `json:"code" bson:"code"`
	Name       string `json:"name" bson:"name"`
	NativeName string `json:"native_name,omitempty" bson:"native_name,omitempty"`
	Active     bool   `json:"active" bson:"active"`

	DateCreated time.Time  `json:"date_created" bson:"date_created"`
	DateUpdated *time.Time `json:"date_updated" bson:"date_updated"`
}

//TranslationStatus is the status of a translation job or of a single translated field
type TranslationStatus string

const (
	//TranslationStatusPending no translation work done yet
	TranslationStatusPending TranslationStatus = "PENDING_TRANSLATION"
	//TranslationStatusMachine machine translated, not yet reviewed
	TranslationStatusMachine TranslationStatus = "MACHINE_TRANSLATED"
	//TranslationStatusReviewed reviewed and accepted by a volunteer
	TranslationStatusReviewed TranslationStatus = "VOLUNTEER_REVIEWED"
	//TranslationStatusFailed translation attempt failed
	TranslationStatusFailed TranslationStatus = "TRANSLATION_FAILED"
	//TranslationStatusCancelled language deactivated before the work completed
	TranslationStatusCancelled TranslationStatus = "CANCELLED"
)

//TranslatableFields lists the organization fields volunteers translate.
//A job is promoted to reviewed only when every one of these is reviewed.
var TranslatableFields = []string{"name", "about"}

//TranslatableField says whether the given field name is translatable
func TranslatableField(name string) bool {
	for _, field := range TranslatableFields {
		if field == name {
			return true
		}
	}
	return false
}

//TranslationJob tracks translation progress for one (organization, language) pair
type TranslationJob struct {
	ID string `json:"id" bson:"_id"`

	OrganizationID string `json:"organization_id" bson:"organization_id"`
	LanguageCode   string `json:"language_code" bson:"language_code"`

	Status TranslationStatus `json:"status" bson:"status"`

	DateCreated time.Time  `json:"date_created" bson:"date_created"`
	DateUpdated *time.Time `json:"date_updated" bson:"date_updated"`
}

func (t TranslationJob) String() string {
	return fmt.Sprintf("[Org:%s\tLang:%s\tStatus:%s]", t.OrganizationID, t.LanguageCode, t.Status)
}

//OrganizationTranslation is one translated field value, unique per (organization, language, field)
type OrganizationTranslation struct {
	ID string `json:"id" bson:"_id"`

	OrganizationID string `json:"organization_id" bson:"organization_id"`
	LanguageCode   string `json:"language_code" bson:"language_code"`
	FieldName      string `json:"field_name" bson:"field_name"`

	TranslatedText string            `json:"translated_text" bson:"translated_text"`
	Status         TranslationStatus `json:"status" bson:"status"`
	TranslatorID   string            `json:"translator_id" bson:"translator_id"`

	DateCreated time.Time  `json:"date_created" bson:"date_created"`
	DateUpdated *time.Time `json:"date_updated" bson:"date_updated"`
}

//LanguageCoverage is the read-computed translation coverage of a language
type LanguageCoverage struct {
	LanguageCode string `json:"language_code"`

	ApprovedOrganizations int64 `json:"approved_organizations"`
	ReviewedJobs          int64 `json:"reviewed_jobs"`

	//Percent is round(100 * reviewed / approved); 0 when there are no approved organizations
	Percent int `json:"percent"`
}
