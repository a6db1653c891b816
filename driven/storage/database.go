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
	"time"

	"github.com/rokwire/logging-library-go/v2/logs"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type database struct {
	mongoDBAuth  string
	mongoDBName  string
	mongoTimeout time.Duration

	logger *logs.Logger

	db       *mongo.Database
	dbClient *mongo.Client

	organizations            *collectionWrapper
	organizationIDCounter    *collectionWrapper
	branchIDCounters         *collectionWrapper
	reviewNotes              *collectionWrapper
	auditLogs                *collectionWrapper
	languages                *collectionWrapper
	translationJobs          *collectionWrapper
	organizationTranslations *collectionWrapper
	regions                  *collectionWrapper
	serviceCategories        *collectionWrapper
	serviceResources         *collectionWrapper
	faiths                   *collectionWrapper
	socialCategories         *collectionWrapper
}

func (d *database) start() error {
	d.logger.Info("database -> start")

	//connect to the database
	clientOptions := options.Client().ApplyURI(d.mongoDBAuth)
	connectContext, cancel := context.WithTimeout(context.Background(), d.mongoTimeout)
	client, err := mongo.Connect(connectContext, clientOptions)
	cancel()
	if err != nil {
		return err
	}

	//ping the database
	pingContext, cancel := context.WithTimeout(context.Background(), d.mongoTimeout)
	err = client.Ping(pingContext, nil)
	cancel()
	if err != nil {
		return err
	}

	//apply checks
	db := client.Database(d.mongoDBName)

	organizations := &collectionWrapper{database: d, coll: db.Collection("organizations")}
	err = d.applyOrganizationsChecks(organizations)
	if err != nil {
		return err
	}

	organizationIDCounter := &collectionWrapper{database: d, coll: db.Collection("organization_id_counter")}
	branchIDCounters := &collectionWrapper{database: d, coll: db.Collection("branch_id_counters")}

	reviewNotes := &collectionWrapper{database: d, coll: db.Collection("review_notes")}
	err = d.applyReviewNotesChecks(reviewNotes)
	if err != nil {
		return err
	}

	auditLogs := &collectionWrapper{database: d, coll: db.Collection("audit_logs")}
	err = d.applyAuditLogsChecks(auditLogs)
	if err != nil {
		return err
	}

	languages := &collectionWrapper{database: d, coll: db.Collection("languages")}
	err = d.applyLanguagesChecks(languages)
	if err != nil {
		return err
	}

	translationJobs := &collectionWrapper{database: d, coll: db.Collection("translation_jobs")}
	err = d.applyTranslationJobsChecks(translationJobs)
	if err != nil {
		return err
	}

	organizationTranslations := &collectionWrapper{database: d, coll: db.Collection("organization_translations")}
	err = d.applyOrganizationTranslationsChecks(organizationTranslations)
	if err != nil {
		return err
	}

	regions := &collectionWrapper{database: d, coll: db.Collection("regions")}
	serviceCategories := &collectionWrapper{database: d, coll: db.Collection("service_categories")}
	serviceResources := &collectionWrapper{database: d, coll: db.Collection("service_resources")}
	err = d.applyServiceResourcesChecks(serviceResources)
	if err != nil {
		return err
	}
	faiths := &collectionWrapper{database: d, coll: db.Collection("faiths")}
	socialCategories := &collectionWrapper{database: d, coll: db.Collection("social_categories")}

	//assign the db, db client and the collections
	d.db = db
	d.dbClient = client
	d.organizations = organizations
	d.organizationIDCounter = organizationIDCounter
	d.branchIDCounters = branchIDCounters
	d.reviewNotes = reviewNotes
	d.auditLogs = auditLogs
	d.languages = languages
	d.translationJobs = translationJobs
	d.organizationTranslations = organizationTranslations
	d.regions = regions
	d.serviceCategories = serviceCategories
	d.serviceResources = serviceResources
	d.faiths = faiths
	d.socialCategories = socialCategories

	return nil
}

func (d *database) applyOrganizationsChecks(organizations *collectionWrapper) error {
	d.logger.Info("apply organizations checks.....")

	//custom id - unique
	err := organizations.AddIndex(bson.D{primitive.E{Key: "custom_id", Value: 1}}, true)
	if err != nil {
		return err
	}
	//registration number - unique
	err = organizations.AddIndex(bson.D{primitive.E{Key: "registration_number", Value: 1}}, true)
	if err != nil {
		return err
	}
	//review queue reads in submission order
	err = organizations.AddIndex(bson.D{primitive.E{Key: "status", Value: 1}, primitive.E{Key: "date_created", Value: 1}}, false)
	if err != nil {
		return err
	}
	//duplicate name check - the name is stored normalized to lower case
	err = organizations.AddIndex(bson.D{primitive.E{Key: "name_lower", Value: 1}, primitive.E{Key: "branches.city", Value: 1}}, false)
	if err != nil {
		return err
	}

	d.logger.Info("organizations checks passed")
	return nil
}

func (d *database) applyReviewNotesChecks(reviewNotes *collectionWrapper) error {
	d.logger.Info("apply review notes checks.....")

	err := reviewNotes.AddIndex(bson.D{primitive.E{Key: "organization_id", Value: 1}, primitive.E{Key: "date_created", Value: 1}}, false)
	if err != nil {
		return err
	}

	d.logger.Info("review notes checks passed")
	return nil
}

func (d *database) applyAuditLogsChecks(auditLogs *collectionWrapper) error {
	d.logger.Info("apply audit logs checks.....")

	err := auditLogs.AddIndex(bson.D{primitive.E{Key: "entity_type", Value: 1}, primitive.E{Key: "entity_id", Value: 1}}, false)
	if err != nil {
		return err
	}
	err = auditLogs.AddIndex(bson.D{primitive.E{Key: "date_created", Value: -1}}, false)
	if err != nil {
		return err
	}

	d.logger.Info("audit logs checks passed")
	return nil
}

func (d *database) applyLanguagesChecks(languages *collectionWrapper) error {
	d.logger.Info("apply languages checks.....")

	//code - unique
	err := languages.AddIndex(bson.D{primitive.E{Key: "code", Value: 1}}, true)
	if err != nil {
		return err
	}

	d.logger.Info("languages checks passed")
	return nil
}

func (d *database) applyTranslationJobsChecks(translationJobs *collectionWrapper) error {
	d.logger.Info("apply translation jobs checks.....")

	//one job per organization and language - the fan out relies on this
	err := translationJobs.AddIndex(bson.D{primitive.E{Key: "organization_id", Value: 1}, primitive.E{Key: "language_code", Value: 1}}, true)
	if err != nil {
		return err
	}
	err = translationJobs.AddIndex(bson.D{primitive.E{Key: "language_code", Value: 1}, primitive.E{Key: "status", Value: 1}}, false)
	if err != nil {
		return err
	}

	d.logger.Info("translation jobs checks passed")
	return nil
}

func (d *database) applyOrganizationTranslationsChecks(organizationTranslations *collectionWrapper) error {
	d.logger.Info("apply organization translations checks.....")

	//one value per organization, language and field - upserts key on this
	err := organizationTranslations.AddIndex(bson.D{primitive.E{Key: "organization_id", Value: 1},
		primitive.E{Key: "language_code", Value: 1}, primitive.E{Key: "field_name", Value: 1}}, true)
	if err != nil {
		return err
	}

	d.logger.Info("organization translations checks passed")
	return nil
}

func (d *database) applyServiceResourcesChecks(serviceResources *collectionWrapper) error {
	d.logger.Info("apply service resources checks.....")

	err := serviceResources.AddIndex(bson.D{primitive.E{Key: "category_id", Value: 1}}, false)
	if err != nil {
		return err
	}

	d.logger.Info("service resources checks passed")
	return nil
}
