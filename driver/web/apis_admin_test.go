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
	goerrors "errors"
	"net/http"
	"testing"

	"registry-building-block/core/model"
	"registry-building-block/utils"

	"github.com/rokwire/logging-library-go/v2/errors"
	"github.com/rokwire/logging-library-go/v2/logutils"
	"gotest.tools/assert"
)

func TestHTTPStatusForError(t *testing.T) {
	notFound := errors.ErrorData(logutils.StatusMissing, model.TypeOrganization, nil).SetStatus(utils.ErrorStatusNotFound)
	assert.Equal(t, httpStatusForError(notFound), http.StatusNotFound)

	noteRequired := errors.ErrorData(logutils.StatusMissing, model.TypeReviewNote, nil).SetStatus(utils.ErrorStatusNoteRequired)
	assert.Equal(t, httpStatusForError(noteRequired), http.StatusBadRequest)

	inUse := errors.ErrorData(logutils.StatusFound, model.TypeLanguage, nil).SetStatus(utils.ErrorStatusInUse)
	assert.Equal(t, httpStatusForError(inUse), http.StatusConflict)

	assert.Equal(t, httpStatusForError(goerrors.New("boom")), http.StatusInternalServerError)
}
