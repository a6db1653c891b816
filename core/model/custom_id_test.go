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

func TestOrganizationCustomID(t *testing.T) {
	tests := []struct {
		sequence int
		want     string
		wantErr  bool
	}{
		{1, "ORG00001", false},
		{42, "ORG00042", false},
		{99999, "ORG99999", false},
		{0, "", true},
		{-3, "", true},
	}
	for _, tt := range tests {
		got, err := OrganizationCustomID(tt.sequence)
		if (err != nil) != tt.wantErr {
			t.Errorf("OrganizationCustomID(%d) error = %v, wantErr %v", tt.sequence, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("OrganizationCustomID(%d) = %q, want %q", tt.sequence, got, tt.want)
		}
	}
}

func TestBranchCustomID(t *testing.T) {
	tests := []struct {
		parent   string
		sequence int
		want     string
		wantErr  bool
	}{
		{"ORG00001", 1, "BR00001a", false},
		{"ORG00001", 2, "BR00001b", false},
		{"ORG00042", 26, "BR00042z", false},
		{"ORG00001", 27, "", true},
		{"ORG00001", 0, "", true},
		{"BR00001a", 1, "", true},
		{"ORG1", 1, "", true},
		{"", 1, "", true},
	}
	for _, tt := range tests {
		got, err := BranchCustomID(tt.parent, tt.sequence)
		if (err != nil) != tt.wantErr {
			t.Errorf("BranchCustomID(%q, %d) error = %v, wantErr %v", tt.parent, tt.sequence, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("BranchCustomID(%q, %d) = %q, want %q", tt.parent, tt.sequence, got, tt.want)
		}
	}
}
