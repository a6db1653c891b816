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
	//TypeReviewNote review note type
	TypeReviewNote logutils.MessageDataType = "review note"
	//TypeAuditLog audit log type
	TypeAuditLog logutils.MessageDataType = "audit log"
)

//ReviewNote is an immutable audit trail entry attached to a status transition.
//Notes are only ever inserted, never updated or deleted.
type ReviewNote struct {
	ID             string `json:"id" bson:"_id"`
	OrganizationID string `json:"organization_id" bson:"organization_id"`

	ReviewerID   string `json:"reviewer_id" bson:"reviewer_id"`
	ReviewerName string `json:"reviewer_name,omitempty" bson:"reviewer_name,omitempty"`
	Note         string `json:"note" bson:"note"`

	StatusBefore OrganizationStatus `json:"status_before" bson:"status_before"`
	StatusAfter  OrganizationStatus `json:"status_after" bson:"status_after"`

	DateCreated time.Time `json:"date_created" bson:"date_created"`
}

func (r ReviewNote) String() string {
	return fmt.Sprintf("[ID:%s\tOrg:%s\t%s->%s]", r.ID, r.OrganizationID, r.StatusBefore, r.StatusAfter)
}

//AuditLog is a generic append-only event record written alongside every privileged mutation
type AuditLog struct {
	ID string `json:"id" bson:"_id"`

	ActorID   string `json:"actor_id" bson:"actor_id"`
	ActorRole string `json:"actor_role,omitempty" bson:"actor_role,omitempty"`

	Action     string `json:"action" bson:"action"`
	EntityType string `json:"entity_type" bson:"entity_type"`
	EntityID   string `json:"entity_id" bson:"entity_id"`

	Metadata map[string]interface{} `json:"metadata,omitempty" bson:"metadata,omitempty"`

	DateCreated time.Time `json:"date_created" bson:"date_created"`
}

//AuditActionForStatus gives the audit action tag for a status transition, e.g. ORG_APPROVED
func AuditActionForStatus(status OrganizationStatus) string {
	return "ORG_" + string(status)
}
