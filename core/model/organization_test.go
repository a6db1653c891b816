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
	"testing"
)

func TestOrganizationStatusValid(t *testing.T) {
	for _, status := range []OrganizationStatus{OrgStatusPending, OrgStatusApproved, OrgStatusRejected, OrgStatusClarificationRequested} {
		if !status.Valid() {
			t.Errorf("%s must be valid", status)
		}
	}
	if OrganizationStatus("DELETED").Valid() {
		t.Error("unknown status must not be valid")
	}
	if OrganizationStatus("").Valid() {
		t.Error("empty status must not be valid")
	}
}

func TestOrganizationStatusRequiresNote(t *testing.T) {
	if !OrgStatusRejected.RequiresNote() {
		t.Error("rejection must require a note")
	}
	if !OrgStatusClarificationRequested.RequiresNote() {
		t.Error("clarification request must require a note")
	}
	if OrgStatusApproved.RequiresNote() {
		t.Error("approval must not require a note")
	}
	if OrgStatusPending.RequiresNote() {
		t.Error("pending must not require a note")
	}
}

func TestPrimaryContact(t *testing.T) {
	organization := Organization{Contacts: []Contact{
		{ID: "1", Name: "Asha", Primary: false},
		{ID: "2", Name: "Ravi", Primary: true},
	}}
	primary := organization.PrimaryContact()
	if primary == nil || primary.ID != "2" {
		t.Errorf("got %v, wanted contact 2", primary)
	}

	none := Organization{Contacts: []Contact{{ID: "1", Name: "Asha"}}}
	if none.PrimaryContact() != nil {
		t.Error("expected no primary contact")
	}
}
