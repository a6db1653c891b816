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

package storage

import (
	"errors"
	"testing"

	"go.mongodb.org/mongo-driver/mongo"
)

func TestIsDuplicateKeyError(t *testing.T) {
	allDuplicates := mongo.BulkWriteException{WriteErrors: []mongo.BulkWriteError{
		{WriteError: mongo.WriteError{Code: 11000}},
		{WriteError: mongo.WriteError{Code: 11000}},
	}}
	if !isDuplicateKeyError(allDuplicates) {
		t.Error("a bulk write failing only on duplicate keys must be tolerated")
	}

	mixed := mongo.BulkWriteException{WriteErrors: []mongo.BulkWriteError{
		{WriteError: mongo.WriteError{Code: 11000}},
		{WriteError: mongo.WriteError{Code: 121}},
	}}
	if isDuplicateKeyError(mixed) {
		t.Error("a bulk write with a non duplicate failure must not be tolerated")
	}

	concern := mongo.BulkWriteException{
		WriteConcernError: &mongo.WriteConcernError{Code: 64},
		WriteErrors:       []mongo.BulkWriteError{{WriteError: mongo.WriteError{Code: 11000}}},
	}
	if isDuplicateKeyError(concern) {
		t.Error("a write concern failure must not be tolerated")
	}

	single := mongo.WriteException{WriteErrors: mongo.WriteErrors{{Code: 11000}}}
	if !isDuplicateKeyError(single) {
		t.Error("a single duplicate key write must be tolerated")
	}

	if isDuplicateKeyError(errors.New("connection reset")) {
		t.Error("an arbitrary error must not be tolerated")
	}
}
