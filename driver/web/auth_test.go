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

package web

import (
	"testing"

	"github.com/rokwire/core-auth-library-go/v3/authorization"
)

func TestAdminPolicyLoads(t *testing.T) {
	auth := authorization.NewCasbinStringAuthorization("authorization_admin_policy.csv")
	if auth == nil {
		t.Fatal("the admin policy failed to load")
	}

	err := auth.Any([]string{"all_admin_registry"}, "/registry/admin/organizations/org-1/status", "PATCH")
	if err != nil {
		t.Errorf("all_admin_registry must be allowed to update an organization status: %v", err)
	}

	err = auth.Any([]string{"registry_review"}, "/registry/admin/organizations/org-1/status", "PATCH")
	if err != nil {
		t.Errorf("registry_review must be allowed to update an organization status: %v", err)
	}

	err = auth.Any([]string{"registry_review"}, "/registry/admin/organizations/org-1/translations/hi/name", "PUT")
	if err != nil {
		t.Errorf("registry_review must be allowed to record translations: %v", err)
	}

	err = auth.Any([]string{"registry_review"}, "/registry/admin/languages", "POST")
	if err == nil {
		t.Error("registry_review must not be allowed to create languages")
	}
}
