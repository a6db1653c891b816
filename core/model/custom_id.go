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
	"strings"

	"github.com/rokwire/logging-library-go/v2/errors"
	"github.com/rokwire/logging-library-go/v2/logutils"
)

const (
	organizationIDPrefix = "ORG"
	branchIDPrefix       = "BR"

	//MaxBranchesPerOrganization is the capacity implied by the single letter suffix
	MaxBranchesPerOrganization = 26
)

//OrganizationCustomID formats the human readable id for the given allocation sequence, e.g. ORG00001
func OrganizationCustomID(sequence int) (string, error) {
	if sequence < 1 {
		return "", errors.ErrorData(logutils.StatusInvalid, TypeCustomID, &logutils.FieldArgs{"sequence": sequence})
	}
	return fmt.Sprintf("%s%05d", organizationIDPrefix, sequence), nil
}

//BranchCustomID formats the branch id for the given parent and allocation sequence,
//e.g. parent ORG00001 and sequence 1 give BR00001a. Sequences above the letter
//capacity are rejected.
func BranchCustomID(parentCustomID string, sequence int) (string, error) {
	number := strings.TrimPrefix(parentCustomID, organizationIDPrefix)
	if number == parentCustomID || len(number) != 5 {
		return "", errors.ErrorData(logutils.StatusInvalid, TypeCustomID, &logutils.FieldArgs{"parent": parentCustomID})
	}
	if sequence < 1 || sequence > MaxBranchesPerOrganization {
		return "", errors.ErrorData(logutils.StatusInvalid, TypeCustomID,
			&logutils.FieldArgs{"parent": parentCustomID, "sequence": sequence})
	}

	letter := rune('a' + sequence - 1)
	return fmt.Sprintf("%s%s%c", branchIDPrefix, number, letter), nil
}
