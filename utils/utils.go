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

package utils

//Error statuses carried on errors so the web adapter can map them to HTTP codes
const (
	//ErrorStatusNoteRequired the transition needs a reviewer note
	ErrorStatusNoteRequired string = "note-required"
	//ErrorStatusInvalidTransition the review state machine forbids the move
	ErrorStatusInvalidTransition string = "invalid-transition"
	//ErrorStatusBranchCapacity the parent organization has no branch ids left
	ErrorStatusBranchCapacity string = "branch-capacity-exceeded"
	//ErrorStatusInUse the entity is referenced and cannot be deleted
	ErrorStatusInUse string = "in-use"
	//ErrorStatusAlreadyExists an entity with the same key already exists
	ErrorStatusAlreadyExists string = "already-exists"
	//ErrorStatusNotFound the referenced entity does not exist
	ErrorStatusNotFound string = "not-found"
)

//Contains says whether the list contains the given value
func Contains(list []string, value string) bool {
	for _, entry := range list {
		if entry == value {
			return true
		}
	}
	return false
}
