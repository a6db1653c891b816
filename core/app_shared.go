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
	"strings"
	"time"

	"registry-building-block/core/model"
	"registry-building-block/driven/storage"
	"registry-building-block/utils"

	"github.com/google/uuid"
	"github.com/rokwire/core-auth-library-go/v3/tokenauth"
)

//Permissions recognized by the registry
const (
	//PermissionAdmin grants the full admin surface
	PermissionAdmin = "all_admin_registry"
	//PermissionReview grants the review queue and translation work
	PermissionReview = "registry_review"
)

//canReview says whether the claims carry the reviewer or admin permission
func canReview(claims *tokenauth.Claims) bool {
	if claims == nil {
		return false
	}
	permissions := strings.Split(claims.Permissions, ",")
	return utils.Contains(permissions, PermissionAdmin) || utils.Contains(permissions, PermissionReview)
}

//actorRole derives the audit role label from the token permissions
func actorRole(claims *tokenauth.Claims) string {
	if claims == nil {
		return ""
	}
	if claims.Admin {
		return "admin"
	}
	return "reviewer"
}

//writeAuditLog appends an audit record inside the caller's transaction
func (app *application) writeAuditLog(context storage.TransactionContext, claims *tokenauth.Claims,
	action string, entityType string, entityID string, metadata map[string]interface{}) error {
	actorID := ""
	if claims != nil {
		actorID = claims.Subject
	}
	auditLog := model.AuditLog{ID: uuid.NewString(), ActorID: actorID, ActorRole: actorRole(claims),
		Action: action, EntityType: entityType, EntityID: entityID, Metadata: metadata, DateCreated: time.Now().UTC()}
	return app.storage.InsertAuditLog(context, auditLog)
}

//translationJobsFor builds the pending job set for the given organizations and language codes
func translationJobsFor(organizationIDs []string, languageCodes []string) []model.TranslationJob {
	now := time.Now().UTC()
	jobs := make([]model.TranslationJob, 0, len(organizationIDs)*len(languageCodes))
	for _, orgID := range organizationIDs {
		for _, code := range languageCodes {
			jobs = append(jobs, model.TranslationJob{ID: uuid.NewString(), OrganizationID: orgID,
				LanguageCode: code, Status: model.TranslationStatusPending, DateCreated: now})
		}
	}
	return jobs
}
