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
	"registry-building-block/core/model"
	"registry-building-block/driven/storage"

	"github.com/rokwire/logging-library-go/v2/logs"
)

//TranslationFanoutListener creates pending translation jobs for a newly approved
//organization, one per active language. It is an optional listener - bootstrap
//decides whether to register it, and the language activation path creates the
//same jobs for organizations approved while it was off.
type TranslationFanoutListener struct {
	storage Storage
	logger  *logs.Logger
}

//OnOrganizationStatusChanged fans jobs out when an organization reaches approved
func (t *TranslationFanoutListener) OnOrganizationStatusChanged(organization model.Organization, statusBefore model.OrganizationStatus) {
	if organization.Status != model.OrgStatusApproved {
		return
	}

	languages, err := t.storage.FindLanguages(true)
	if err != nil {
		t.logger.Errorf("error loading languages for translation fan out - %s", err)
		return
	}
	if len(languages) == 0 {
		return
	}

	codes := make([]string, len(languages))
	for i, language := range languages {
		codes[i] = language.Code
	}
	jobs := translationJobsFor([]string{organization.ID}, codes)

	//duplicate pairs are skipped by the unordered insert
	err = t.storage.PerformTransaction(func(context storage.TransactionContext) error {
		return t.storage.InsertTranslationJobs(context, jobs)
	})
	if err != nil {
		t.logger.Errorf("error fanning out translation jobs for %s - %s", organization.CustomID, err)
	}
}

//NewTranslationFanoutListener creates a translation fan out listener
func NewTranslationFanoutListener(storage Storage, logger *logs.Logger) *TranslationFanoutListener {
	return &TranslationFanoutListener{storage: storage, logger: logger}
}
