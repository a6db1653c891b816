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

//OrganizationRegistration is the complete intake payload submitted by the public form.
//The declarative constraints live in the validate tags; the business rules
//(phone prefix, year upper bound, resource/category cross check, duplicate name)
//are enforced by the application on top of them.
type OrganizationRegistration struct {
	Name               string  `json:"name" validate:"required,min=3,max=100"`
	About              string  `json:"about"`
	RegistrationType   string  `json:"registration_type" validate:"required"`
	RegistrationNumber string  `json:"registration_number" validate:"required"`
	YearEstablished    int     `json:"year_established" validate:"required,min=1800"`
	ParentID           *string `json:"parent_id"`

	Contacts []RegistrationContact `json:"contacts" validate:"required,min=1,max=2,dive"`
	Branches []RegistrationBranch  `json:"branches" validate:"required,min=1,dive"`

	CategoryIDs   []string `json:"category_ids" validate:"required,min=1"`
	ResourceIDs   []string `json:"resource_ids"`
	LanguageCodes []string `json:"language_codes" validate:"required,min=1"`

	FaithID          *string `json:"faith_id"`
	SocialCategoryID *string `json:"social_category_id"`

	Documents RegistrationDocuments `json:"documents"`
}

//RegistrationContact is a contact entry of the intake payload
type RegistrationContact struct {
	Name    string `json:"name" validate:"required"`
	Phone   string `json:"phone" validate:"required,len=10,numeric"`
	Email   string `json:"email" validate:"required,email"`
	Primary bool   `json:"primary"`
}

//RegistrationBranch is a branch entry of the intake payload
type RegistrationBranch struct {
	AddressLine1 string `json:"address_line1" validate:"required"`
	AddressLine2 string `json:"address_line2"`
	RegionID     string `json:"region_id" validate:"required"`
	City         string `json:"city" validate:"required"`
	PINCode      string `json:"pin_code" validate:"required,len=6,numeric"`

	Timings []RegistrationTiming `json:"timings" validate:"required,len=7,dive"`
}

//RegistrationTiming is the opening hours entry for one weekday, 0 (Sunday) through 6
type RegistrationTiming struct {
	Day      int    `json:"day" validate:"min=0,max=6"`
	IsClosed bool   `json:"is_closed"`
	Open     string `json:"open"`
	Close    string `json:"close"`
}

//RegistrationDocuments carries the uploaded document URLs of the intake payload
type RegistrationDocuments struct {
	RegistrationCertificateURL string   `json:"registration_certificate_url" validate:"required,url"`
	LogoURL                    string   `json:"logo_url" validate:"omitempty,url"`
	AdditionalCertificateURLs  []string `json:"additional_certificate_urls" validate:"max=3,dive,url"`
}
