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
	"context"
	"strconv"
	"sync"
	"time"

	"registry-building-block/core/model"

	"github.com/rokwire/logging-library-go/v2/errors"
	"github.com/rokwire/logging-library-go/v2/logs"
	"github.com/rokwire/logging-library-go/v2/logutils"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"golang.org/x/sync/syncmap"
)

//Adapter implements the Storage interface
type Adapter struct {
	db *database

	logger *logs.Logger

	cachedLanguages *syncmap.Map
	languagesLock   *sync.RWMutex
}

//TransactionContext wraps mongo.SessionContext for use by transaction functions
type TransactionContext interface {
	mongo.SessionContext
}

//Start starts the storage
func (sa *Adapter) Start() error {
	err := sa.db.start()
	if err != nil {
		return errors.WrapErrorAction(logutils.ActionInitialize, "storage adapter", nil, err)
	}

	err = sa.cacheLanguages()
	if err != nil {
		return errors.WrapErrorAction(logutils.ActionCache, model.TypeLanguage, nil, err)
	}
	return nil
}

//PerformTransaction performs a transaction
func (sa *Adapter) PerformTransaction(transaction func(context TransactionContext) error) error {
	// transaction
	err := sa.db.dbClient.UseSession(context.Background(), func(sessionContext mongo.SessionContext) error {
		err := sessionContext.StartTransaction()
		if err != nil {
			sa.abortTransaction(sessionContext)
			return errors.WrapErrorAction(logutils.ActionStart, logutils.TypeTransaction, nil, err)
		}

		err = transaction(sessionContext)
		if err != nil {
			sa.abortTransaction(sessionContext)
			return errors.WrapErrorAction("performing", logutils.TypeTransaction, nil, err)
		}

		err = sessionContext.CommitTransaction(sessionContext)
		if err != nil {
			sa.abortTransaction(sessionContext)
			return errors.WrapErrorAction(logutils.ActionCommit, logutils.TypeTransaction, nil, err)
		}
		return nil
	})

	return err
}

func (sa *Adapter) abortTransaction(sessionContext mongo.SessionContext) {
	err := sessionContext.AbortTransaction(sessionContext)
	if err != nil {
		sa.logger.Errorf("error aborting a transaction - %s", err)
	}
}

type counter struct {
	ID   string `bson:"_id"`
	Next int    `bson:"next"`
}

//counterNextUpdate advances a counter in one atomic round trip. The pipeline
//seeds a missing counter at 1 before adding, so the stored value is always the
//next sequence to hand out and the emitted one is stored minus one.
func counterNextUpdate() []bson.M {
	return []bson.M{
		{"$set": bson.M{"next": bson.M{"$add": bson.A{bson.M{"$ifNull": bson.A{"$next", 1}}, 1}}}},
	}
}

//AllocateOrganizationSequence draws the next organization sequence number
func (sa *Adapter) AllocateOrganizationSequence(context TransactionContext) (int, error) {
	filter := bson.M{"_id": "organizations"}
	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)

	var result counter
	err := sa.db.organizationIDCounter.FindOneAndUpdateWithContext(context, filter, counterNextUpdate(), &result, opts)
	if err != nil {
		return 0, errors.WrapErrorAction(logutils.ActionUpdate, "organization id counter", nil, err)
	}
	return result.Next - 1, nil
}

//AllocateBranchSequence draws the next branch sequence number for the given parent
func (sa *Adapter) AllocateBranchSequence(context TransactionContext, parentCustomID string) (int, error) {
	filter := bson.M{"_id": parentCustomID}
	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)

	var result counter
	err := sa.db.branchIDCounters.FindOneAndUpdateWithContext(context, filter, counterNextUpdate(), &result, opts)
	if err != nil {
		return 0, errors.WrapErrorAction(logutils.ActionUpdate, "branch id counter",
			&logutils.FieldArgs{"parent": parentCustomID}, err)
	}
	return result.Next - 1, nil
}

//InsertOrganization inserts an organization
func (sa *Adapter) InsertOrganization(context TransactionContext, organization model.Organization) error {
	_, err := sa.db.organizations.InsertOneWithContext(context, organization)
	if err != nil {
		return errors.WrapErrorAction(logutils.ActionInsert, model.TypeOrganization, nil, err)
	}
	return nil
}

//FindOrganization finds an organization by id
func (sa *Adapter) FindOrganization(id string) (*model.Organization, error) {
	filter := bson.M{"_id": id}
	var result model.Organization
	err := sa.db.organizations.FindOne(filter, &result, nil)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, errors.WrapErrorAction(logutils.ActionFind, model.TypeOrganization, &logutils.FieldArgs{"_id": id}, err)
	}
	return &result, nil
}

//FindOrganizationByNameAndCity finds an organization by normalized name with a
//branch in the given city. Callers pass the name lower cased - the stored
//name_lower field makes the duplicate check case insensitive.
func (sa *Adapter) FindOrganizationByNameAndCity(nameLower string, city string) (*model.Organization, error) {
	filter := bson.M{"name_lower": nameLower, "branches.city": city}
	var result model.Organization
	err := sa.db.organizations.FindOne(filter, &result, nil)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, errors.WrapErrorAction(logutils.ActionFind, model.TypeOrganization,
			&logutils.FieldArgs{"name_lower": nameLower, "city": city}, err)
	}
	return &result, nil
}

//FindOrganizations finds organizations, oldest submissions first so reviewers work a fair queue
func (sa *Adapter) FindOrganizations(status *model.OrganizationStatus, limit int, offset int) ([]model.Organization, error) {
	filter := bson.M{}
	if status != nil {
		filter["status"] = *status
	}

	findOptions := options.Find().SetSort(bson.D{{Key: "date_created", Value: 1}})
	if limit > 0 {
		findOptions.SetLimit(int64(limit))
	}
	if offset > 0 {
		findOptions.SetSkip(int64(offset))
	}

	var result []model.Organization
	err := sa.db.organizations.Find(filter, &result, findOptions)
	if err != nil {
		return nil, errors.WrapErrorAction(logutils.ActionFind, model.TypeOrganization, nil, err)
	}
	return result, nil
}

//FindOrganizationIDsByStatus gives the ids of all organizations in the given status
func (sa *Adapter) FindOrganizationIDsByStatus(status model.OrganizationStatus) ([]string, error) {
	filter := bson.M{"status": status}
	findOptions := options.Find().SetProjection(bson.M{"_id": 1})

	var result []struct {
		ID string `bson:"_id"`
	}
	err := sa.db.organizations.Find(filter, &result, findOptions)
	if err != nil {
		return nil, errors.WrapErrorAction(logutils.ActionFind, model.TypeOrganization, &logutils.FieldArgs{"status": status}, err)
	}

	ids := make([]string, len(result))
	for i, entry := range result {
		ids[i] = entry.ID
	}
	return ids, nil
}

//CountOrganizationsByStatus counts the organizations in the given status
func (sa *Adapter) CountOrganizationsByStatus(status model.OrganizationStatus) (int64, error) {
	return sa.db.organizations.CountDocuments(bson.M{"status": status})
}

//UpdateOrganizationStatus sets the status and stamps the update time
func (sa *Adapter) UpdateOrganizationStatus(context TransactionContext, id string, status model.OrganizationStatus) error {
	filter := bson.M{"_id": id}
	update := bson.M{"$set": bson.M{"status": status, "date_updated": time.Now().UTC()}}

	res, err := sa.db.organizations.UpdateOneWithContext(context, filter, update, nil)
	if err != nil {
		return errors.WrapErrorAction(logutils.ActionUpdate, model.TypeOrganization, &logutils.FieldArgs{"_id": id}, err)
	}
	if res.MatchedCount != 1 {
		return errors.ErrorData(logutils.StatusMissing, model.TypeOrganization, &logutils.FieldArgs{"_id": id})
	}
	return nil
}

//CountOrganizationsByResource counts the organizations that selected the given service resource
func (sa *Adapter) CountOrganizationsByResource(resourceID string) (int64, error) {
	return sa.db.organizations.CountDocuments(bson.M{"resource_ids": resourceID})
}

//CountBranchesByRegion counts the organizations with a branch in the given region
func (sa *Adapter) CountBranchesByRegion(regionID string) (int64, error) {
	return sa.db.organizations.CountDocuments(bson.M{"branches.region_id": regionID})
}

//InsertReviewNote inserts a review note
func (sa *Adapter) InsertReviewNote(context TransactionContext, note model.ReviewNote) error {
	_, err := sa.db.reviewNotes.InsertOneWithContext(context, note)
	if err != nil {
		return errors.WrapErrorAction(logutils.ActionInsert, model.TypeReviewNote, nil, err)
	}
	return nil
}

//FindReviewNotes finds the review notes of an organization, oldest first
func (sa *Adapter) FindReviewNotes(organizationID string) ([]model.ReviewNote, error) {
	filter := bson.M{"organization_id": organizationID}
	findOptions := options.Find().SetSort(bson.D{{Key: "date_created", Value: 1}})

	var result []model.ReviewNote
	err := sa.db.reviewNotes.Find(filter, &result, findOptions)
	if err != nil {
		return nil, errors.WrapErrorAction(logutils.ActionFind, model.TypeReviewNote,
			&logutils.FieldArgs{"organization_id": organizationID}, err)
	}
	return result, nil
}

//InsertAuditLog inserts an audit log record
func (sa *Adapter) InsertAuditLog(context TransactionContext, auditLog model.AuditLog) error {
	_, err := sa.db.auditLogs.InsertOneWithContext(context, auditLog)
	if err != nil {
		return errors.WrapErrorAction(logutils.ActionInsert, model.TypeAuditLog, nil, err)
	}
	return nil
}

//FindAuditLogs finds audit log records, newest first
func (sa *Adapter) FindAuditLogs(entityType *string, entityID *string, limit int, offset int) ([]model.AuditLog, error) {
	filter := bson.M{}
	if entityType != nil {
		filter["entity_type"] = *entityType
	}
	if entityID != nil {
		filter["entity_id"] = *entityID
	}

	findOptions := options.Find().SetSort(bson.D{{Key: "date_created", Value: -1}})
	if limit > 0 {
		findOptions.SetLimit(int64(limit))
	}
	if offset > 0 {
		findOptions.SetSkip(int64(offset))
	}

	var result []model.AuditLog
	err := sa.db.auditLogs.Find(filter, &result, findOptions)
	if err != nil {
		return nil, errors.WrapErrorAction(logutils.ActionFind, model.TypeAuditLog, nil, err)
	}
	return result, nil
}

//NewStorageAdapter creates a new storage adapter instance
func NewStorageAdapter(mongoDBAuth string, mongoDBName string, mongoTimeout string, logger *logs.Logger) *Adapter {
	timeoutInt, err := strconv.Atoi(mongoTimeout)
	if err != nil {
		logger.Warn("Setting default Mongo timeout - 500")
		timeoutInt = 500
	}
	timeout := time.Millisecond * time.Duration(timeoutInt)

	db := &database{mongoDBAuth: mongoDBAuth, mongoDBName: mongoDBName, mongoTimeout: timeout, logger: logger}

	cachedLanguages := &syncmap.Map{}
	languagesLock := &sync.RWMutex{}
	return &Adapter{db: db, logger: logger, cachedLanguages: cachedLanguages, languagesLock: languagesLock}
}
