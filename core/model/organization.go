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
	//TypeOrganization organization type
	TypeOrganization logutils.MessageDataType = "organization"
	//TypeOrganizationContact organization contact type
	TypeOrganizationContact logutils.MessageDataType = "organization contact"
	//TypeOrganizationBranch organization branch type
	TypeOrganizationBranch logutils.MessageDataType = "organization branch"
	//TypeBranchTiming branch timing type
	TypeBranchTiming logutils.MessageDataType = "branch timing"
	//TypeOrganizationDocument organization document type
	TypeOrganizationDocument logutils.MessageDataType = "organization document"
	//TypeOrganizationStatus organization status type
	TypeOrganizationStatus logutils.MessageDataType = "organization status"
	//TypeCustomID custom id type
	TypeCustomID logutils.MessageDataType = "custom id"
	//TypeRegistration organization registration type
	TypeRegistration logutils.MessageDataType = "organization registration"
)

//OrganizationStatus is the lifecycle status of an organization
type OrganizationStatus string

const (
	//OrgStatusPending submitted and awaiting review
	OrgStatusPending OrganizationStatus = "PENDING"
	//OrgStatusApproved accepted into the directory
	OrgStatusApproved OrganizationStatus = "APPROVED"
	//OrgStatusRejected declined by a reviewer
	OrgStatusRejected OrganizationStatus = "REJECTED"
	//OrgStatusClarificationRequested sent back to the registrant for more information
	OrgStatusClarificationRequested OrganizationStatus = "CLARIFICATION_REQUESTED"
)

//Valid says whether the status is one of the known lifecycle statuses
func (s OrganizationStatus) Valid() bool {
	switch s {
	case OrgStatusPending, OrgStatusApproved, OrgStatusRejected, OrgStatusClarificationRequested:
		return true
	}
	return false
}

//RequiresNote says whether a transition into this status must carry a reviewer note
func (s OrganizationStatus) RequiresNote() bool {
	return s == OrgStatusRejected || s == OrgStatusClarificationRequested
}

//Registration types
const (
	RegistrationTypeNGO        string = "NGO"
	RegistrationTypeTrust      string = "TRUST"
	RegistrationTypeGovernment string = "GOVERNMENT"
	RegistrationTypePrivate    string = "PRIVATE"
	RegistrationTypeOther      string = "OTHER"
)

//RegistrationTypes lists the accepted registration types
var RegistrationTypes = []string{RegistrationTypeNGO, RegistrationTypeTrust,
	RegistrationTypeGovernment, RegistrationTypePrivate, RegistrationTypeOther}

//Organization represents a registrant entity seeking directory listing
type Organization struct {
	ID       string `json:"id" bson:"_id"`
	CustomID string `json:"custom_id" bson:"custom_id"`

	Name string `json:"name" bson:"name"`
	//NameLower backs the case insensitive duplicate name check
	NameLower          string `json:"-" bson:"name_lower"`
	About              string `json:"about,omitempty" bson:"about,omitempty"`
	RegistrationType   string `json:"registration_type" bson:"registration_type"`
	RegistrationNumber string `json:"registration_number" bson:"registration_number"`
	YearEstablished    int    `json:"year_established" bson:"year_established"`

	//set when the organization is itself a branch of another organization
	ParentID *string `json:"parent_id,omitempty" bson:"parent_id,omitempty"`

	Status OrganizationStatus `json:"status" bson:"status"`

	Contacts      []Contact  `json:"contacts" bson:"contacts"`
	Branches      []Branch   `json:"branches" bson:"branches"`
	CategoryIDs   []string   `json:"category_ids" bson:"category_ids"`
	ResourceIDs   []string   `json:"resource_ids" bson:"resource_ids"`
	LanguageCodes []string   `json:"language_codes" bson:"language_codes"`
	Documents     []Document `json:"documents" bson:"documents"`

	DateCreated time.Time  `json:"date_created" bson:"date_created"`
	DateUpdated *time.Time `json:"date_updated" bson:"date_updated"`
}

func (o Organization) String() string {
	return fmt.Sprintf("[ID:%s\tCustomID:%s\tName:%s\tStatus:%s]", o.ID, o.CustomID, o.Name, o.Status)
}

//PrimaryContact gives the contact marked primary, if any
func (o Organization) PrimaryContact() *Contact {
	for _, contact := range o.Contacts {
		if contact.Primary {
			return &contact
		}
	}
	return nil
}

//Contact represents a contact person of an organization
type Contact struct {
	ID      string `json:"id" bson:"_id"`
	Name    string `json:"name" bson:"name"`
	Phone   string `json:"phone" bson:"phone"`
	Email   string `json:"email" bson:"email"`
	Primary bool   `json:"primary" bson:"primary"`
}

//Branch represents a physical location of an organization
type Branch struct {
	ID           string      `json:"id" bson:"_id"`
	AddressLine1 string      `json:"address_line1" bson:"address_line1"`
	AddressLine2 string      `json:"address_line2,omitempty" bson:"address_line2,omitempty"`
	RegionID     string      `json:"region_id" bson:"region_id"`
	City         string      `json:"city" bson:"city"`
	PINCode      string      `json:"pin_code" bson:"pin_code"`
	Timings      []DayTiming `json:"timings" bson:"timings"`
}

//DayTiming represents the opening hours of a branch on one day of the week.
//Open and Close hold "HH:MM" local times and are empty when the branch is closed that day.
type DayTiming struct {
	Day      time.Weekday `json:"day" bson:"day"`
	IsClosed bool         `json:"is_closed" bson:"is_closed"`
	Open     string       `json:"open,omitempty" bson:"open,omitempty"`
	Close    string       `json:"close,omitempty" bson:"close,omitempty"`
}

//Document kinds
const (
	DocumentRegistrationCertificate string = "registration_certificate"
	DocumentLogo                    string = "logo"
	DocumentAdditionalCertificate   string = "additional_certificate"
)

//Document represents an uploaded document reference attached to an organization
type Document struct {
	ID   string `json:"id" bson:"_id"`
	Kind string `json:"kind" bson:"kind"`
	URL  string `json:"url" bson:"url"`
}

//FieldError is a single validation failure reported back to the caller
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}
