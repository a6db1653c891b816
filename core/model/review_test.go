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
	"encoding/json"
	"strings"
	"testing"
	"time"
)

func TestAuditLogJSONKeys(t *testing.T) {
	log := AuditLog{ID: "a1", ActorID: "reviewer-1", Action: "ORG_APPROVED",
		EntityType: "organization", EntityID: "org-1",
		Metadata:    map[string]interface{}{"status_before": "PENDING"},
		DateCreated: time.Now().UTC()}

	data, err := json.Marshal(log)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(string(data), `"metadata"`) {
		t.Errorf("metadata must serialize under the lower case key: %s", data)
	}
	if strings.Contains(string(data), `"Metadata"`) {
		t.Errorf("metadata must not serialize under the Go field name: %s", data)
	}
}
