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
	"time"

	"registry-building-block/core/model"

	"github.com/rokwire/logging-library-go/v2/errors"
	"github.com/rokwire/logging-library-go/v2/logutils"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"golang.org/x/sync/syncmap"
)

//cacheLanguages loads the full language list into the in-memory cache.
//Languages change rarely and are read on every registration, so they are
//cached; writers reload the cache after their changes commit.
func (sa *Adapter) cacheLanguages() error {
	sa.logger.Info("cacheLanguages..")

	languages, err := sa.loadLanguages()
	if err != nil {
		return errors.WrapErrorAction(logutils.ActionFind, model.TypeLanguage, nil, err)
	}

	sa.setCachedLanguages(languages)
	return nil
}

func (sa *Adapter) setCachedLanguages(languages []model.Language) {
	sa.languagesLock.Lock()
	defer sa.languagesLock.Unlock()

	cache := &syncmap.Map{}
	for _, language := range languages {
		cache.Store(language.Code, language)
	}
	sa.cachedLanguages = cache
}

func (sa *Adapter) loadLanguages() ([]model.Language, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "code", Value: 1}})
	var result []model.Language
	err := sa.db.languages.Find(nil, &result, findOptions)
	if err != nil {
		return nil, err
	}
	return result, nil
}

//FindLanguages gives the languages from the cache
func (sa *Adapter) FindLanguages(activeOnly bool) ([]model.Language, error) {
	sa.languagesLock.RLock()
	defer sa.languagesLock.RUnlock()

	languages := []model.Language{}
	sa.cachedLanguages.Range(func(key, value interface{}) bool {
		language, ok := value.(model.Language)
		if !ok {
			return false
		}
		if !activeOnly || language.Active {
			languages = append(languages, language)
		}
		return true
	})
	return languages, nil
}

//FindLanguage gives a language by code from the cache
func (sa *Adapter) FindLanguage(code string) (*model.Language, error) {
	sa.languagesLock.RLock()
	defer sa.languagesLock.RUnlock()

	value, ok := sa.cachedLanguages.Load(code)
	if !ok {
		return nil, nil
	}
	language, ok := value.(model.Language)
	if !ok {
		return nil, errors.ErrorData(logutils.StatusInvalid, model.TypeLanguage, &logutils.FieldArgs{"code": code})
	}
	return &language, nil
}

//InsertLanguage inserts a language
func (sa *Adapter) InsertLanguage(context TransactionContext, language model.Language) error {
	_, err := sa.db.languages.InsertOneWithContext(context, language)
	if err != nil {
		return errors.WrapErrorAction(logutils.ActionInsert, model.TypeLanguage, nil, err)
	}
	return nil
}

//UpdateLanguageStatus flips the activation flag
func (sa *Adapter) UpdateLanguageStatus(context TransactionContext, code string, active bool) error {
	filter := bson.M{"code": code}
	update := bson.M{"$set": bson.M{"active": active, "date_updated": time.Now().UTC()}}

	res, err := sa.db.languages.UpdateOneWithContext(context, filter, update, nil)
	if err != nil {
		return errors.WrapErrorAction(logutils.ActionUpdate, model.TypeLanguage, &logutils.FieldArgs{"code": code}, err)
	}
	if res.MatchedCount != 1 {
		return errors.ErrorData(logutils.StatusMissing, model.TypeLanguage, &logutils.FieldArgs{"code": code})
	}
	return nil
}

//DeleteLanguage deletes a language
func (sa *Adapter) DeleteLanguage(code string) error {
	res, err := sa.db.languages.DeleteOne(bson.M{"code": code}, nil)
	if err != nil {
		return errors.WrapErrorAction(logutils.ActionDelete, model.TypeLanguage, &logutils.FieldArgs{"code": code}, err)
	}
	if res.DeletedCount != 1 {
		return errors.ErrorData(logutils.StatusMissing, model.TypeLanguage, &logutils.FieldArgs{"code": code})
	}
	return nil
}

//RefreshCachedLanguages reloads the language cache from the committed data.
//Core calls this after a language mutation commits - a reload inside the
//transaction would capture the pre commit language set.
func (sa *Adapter) RefreshCachedLanguages() error {
	return sa.cacheLanguages()
}

//InsertTranslationJobs inserts the jobs, silently skipping pairs that already have one.
//The unordered insert keeps going past duplicate key errors so a re-run of the same
//fan out is a no-op for the pairs it already covered.
func (sa *Adapter) InsertTranslationJobs(context TransactionContext, jobs []model.TranslationJob) error {
	if len(jobs) == 0 {
		return nil
	}

	documents := make([]interface{}, len(jobs))
	for i, job := range jobs {
		documents[i] = job
	}

	opts := options.InsertMany().SetOrdered(false)
	_, err := sa.db.translationJobs.InsertManyWithContext(context, documents, opts)
	if err != nil && !isDuplicateKeyError(err) {
		return errors.WrapErrorAction(logutils.ActionInsert, model.TypeTranslationJob, nil, err)
	}
	return nil
}

//isDuplicateKeyError says whether every write failure in the error is a duplicate key
func isDuplicateKeyError(err error) bool {
	bulkErr, ok := err.(mongo.BulkWriteException)
	if !ok {
		return mongo.IsDuplicateKeyError(err)
	}
	if bulkErr.WriteConcernError != nil {
		return false
	}
	for _, writeErr := range bulkErr.WriteErrors {
		if writeErr.Code != 11000 {
			return false
		}
	}
	return true
}

//FindTranslationJob finds the job for an organization and language pair
func (sa *Adapter) FindTranslationJob(organizationID string, languageCode string) (*model.TranslationJob, error) {
	filter := bson.M{"organization_id": organizationID, "language_code": languageCode}
	var result model.TranslationJob
	err := sa.db.translationJobs.FindOne(filter, &result, nil)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, errors.WrapErrorAction(logutils.ActionFind, model.TypeTranslationJob,
			&logutils.FieldArgs{"organization_id": organizationID, "language_code": languageCode}, err)
	}
	return &result, nil
}

//UpdateTranslationJobStatus sets a job's status
func (sa *Adapter) UpdateTranslationJobStatus(context TransactionContext, id string, status model.TranslationStatus) error {
	filter := bson.M{"_id": id}
	update := bson.M{"$set": bson.M{"status": status, "date_updated": time.Now().UTC()}}

	res, err := sa.db.translationJobs.UpdateOneWithContext(context, filter, update, nil)
	if err != nil {
		return errors.WrapErrorAction(logutils.ActionUpdate, model.TypeTranslationJob, &logutils.FieldArgs{"_id": id}, err)
	}
	if res.MatchedCount != 1 {
		return errors.ErrorData(logutils.StatusMissing, model.TypeTranslationJob, &logutils.FieldArgs{"_id": id})
	}
	return nil
}

//CancelPendingTranslationJobs cancels the still pending jobs of a language.
//Completed and failed jobs keep their state.
func (sa *Adapter) CancelPendingTranslationJobs(context TransactionContext, languageCode string) (int64, error) {
	filter := bson.M{"language_code": languageCode, "status": model.TranslationStatusPending}
	update := bson.M{"$set": bson.M{"status": model.TranslationStatusCancelled, "date_updated": time.Now().UTC()}}

	res, err := sa.db.translationJobs.UpdateManyWithContext(context, filter, update, nil)
	if err != nil {
		return 0, errors.WrapErrorAction(logutils.ActionUpdate, model.TypeTranslationJob,
			&logutils.FieldArgs{"language_code": languageCode}, err)
	}
	return res.ModifiedCount, nil
}

//CountTranslationJobs counts the jobs of a language, optionally by status
func (sa *Adapter) CountTranslationJobs(languageCode string, status *model.TranslationStatus) (int64, error) {
	filter := bson.M{"language_code": languageCode}
	if status != nil {
		filter["status"] = *status
	}
	return sa.db.translationJobs.CountDocuments(filter)
}

//UpsertOrganizationTranslation writes a translated field value, keyed on the
//organization, language and field triple
func (sa *Adapter) UpsertOrganizationTranslation(context TransactionContext, translation model.OrganizationTranslation) (*model.OrganizationTranslation, error) {
	now := time.Now().UTC()
	filter := bson.M{"organization_id": translation.OrganizationID, "language_code": translation.LanguageCode,
		"field_name": translation.FieldName}
	update := bson.M{
		"$set": bson.M{"translated_text": translation.TranslatedText, "status": translation.Status,
			"translator_id": translation.TranslatorID, "date_updated": now},
		"$setOnInsert": bson.M{"_id": translation.ID, "organization_id": translation.OrganizationID,
			"language_code": translation.LanguageCode, "field_name": translation.FieldName, "date_created": now},
	}

	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)
	var result model.OrganizationTranslation
	err := sa.db.organizationTranslations.FindOneAndUpdateWithContext(context, filter, update, &result, opts)
	if err != nil {
		return nil, errors.WrapErrorAction(logutils.ActionUpdate, model.TypeOrganizationTranslation, nil, err)
	}
	return &result, nil
}

//FindOrganizationTranslations finds the translated field values of an organization
func (sa *Adapter) FindOrganizationTranslations(organizationID string, languageCode *string) ([]model.OrganizationTranslation, error) {
	filter := bson.M{"organization_id": organizationID}
	if languageCode != nil {
		filter["language_code"] = *languageCode
	}

	var result []model.OrganizationTranslation
	err := sa.db.organizationTranslations.Find(filter, &result, nil)
	if err != nil {
		return nil, errors.WrapErrorAction(logutils.ActionFind, model.TypeOrganizationTranslation,
			&logutils.FieldArgs{"organization_id": organizationID}, err)
	}
	return result, nil
}
