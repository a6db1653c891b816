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

func TestTranslatableField(t *testing.T) {
	for _, field := range TranslatableFields {
		if !TranslatableField(field) {
			t.Errorf("%s must be translatable", field)
		}
	}
	if TranslatableField("registration_number") {
		t.Error("registration_number must not be translatable")
	}
	if TranslatableField("") {
		t.Error("empty field must not be translatable")
	}
}
