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
	"registry-building-block/core/model"

	"github.com/rokwire/logging-library-go/v2/errors"
	"github.com/rokwire/logging-library-go/v2/logutils"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

//FindRegions finds all regions, ordered by state then city
func (sa *Adapter) FindRegions() ([]model.Region, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "state", Value: 1}, {Key: "city", Value: 1}})
	var result []model.Region
	err := sa.db.regions.Find(nil, &result, findOptions)
	if err != nil {
		return nil, errors.WrapErrorAction(logutils.ActionFind, model.TypeRegion, nil, err)
	}
	return result, nil
}

//FindRegion finds a region by id
func (sa *Adapter) FindRegion(id string) (*model.Region, error) {
	var result model.Region
	err := sa.db.regions.FindOne(bson.M{"_id": id}, &result, nil)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, errors.WrapErrorAction(logutils.ActionFind, model.TypeRegion, &logutils.FieldArgs{"_id": id}, err)
	}
	return &result, nil
}

//InsertRegion inserts a region
func (sa *Adapter) InsertRegion(region model.Region) error {
	_, err := sa.db.regions.InsertOne(region)
	if err != nil {
		return errors.WrapErrorAction(logutils.ActionInsert, model.TypeRegion, nil, err)
	}
	return nil
}

//DeleteRegion deletes a region
func (sa *Adapter) DeleteRegion(id string) error {
	res, err := sa.db.regions.DeleteOne(bson.M{"_id": id}, nil)
	if err != nil {
		return errors.WrapErrorAction(logutils.ActionDelete, model.TypeRegion, &logutils.FieldArgs{"_id": id}, err)
	}
	if res.DeletedCount != 1 {
		return errors.ErrorData(logutils.StatusMissing, model.TypeRegion, &logutils.FieldArgs{"_id": id})
	}
	return nil
}

//FindServiceCategories finds all service categories
func (sa *Adapter) FindServiceCategories() ([]model.ServiceCategory, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	var result []model.ServiceCategory
	err := sa.db.serviceCategories.Find(nil, &result, findOptions)
	if err != nil {
		return nil, errors.WrapErrorAction(logutils.ActionFind, model.TypeServiceCategory, nil, err)
	}
	return result, nil
}

//InsertServiceCategory inserts a service category
func (sa *Adapter) InsertServiceCategory(category model.ServiceCategory) error {
	_, err := sa.db.serviceCategories.InsertOne(category)
	if err != nil {
		return errors.WrapErrorAction(logutils.ActionInsert, model.TypeServiceCategory, nil, err)
	}
	return nil
}

//DeleteServiceCategory deletes a service category
func (sa *Adapter) DeleteServiceCategory(id string) error {
	res, err := sa.db.serviceCategories.DeleteOne(bson.M{"_id": id}, nil)
	if err != nil {
		return errors.WrapErrorAction(logutils.ActionDelete, model.TypeServiceCategory, &logutils.FieldArgs{"_id": id}, err)
	}
	if res.DeletedCount != 1 {
		return errors.ErrorData(logutils.StatusMissing, model.TypeServiceCategory, &logutils.FieldArgs{"_id": id})
	}
	return nil
}

//FindServiceResources finds the service resources, optionally filtered by category
func (sa *Adapter) FindServiceResources(categoryID *string) ([]model.ServiceResource, error) {
	filter := bson.M{}
	if categoryID != nil {
		filter["category_id"] = *categoryID
	}
	findOptions := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})

	var result []model.ServiceResource
	err := sa.db.serviceResources.Find(filter, &result, findOptions)
	if err != nil {
		return nil, errors.WrapErrorAction(logutils.ActionFind, model.TypeServiceResource, nil, err)
	}
	return result, nil
}

//FindServiceResourcesByIDs finds the service resources with the given ids
func (sa *Adapter) FindServiceResourcesByIDs(ids []string) ([]model.ServiceResource, error) {
	filter := bson.M{"_id": bson.M{"$in": ids}}
	var result []model.ServiceResource
	err := sa.db.serviceResources.Find(filter, &result, nil)
	if err != nil {
		return nil, errors.WrapErrorAction(logutils.ActionFind, model.TypeServiceResource, &logutils.FieldArgs{"ids": ids}, err)
	}
	return result, nil
}

//InsertServiceResource inserts a service resource
func (sa *Adapter) InsertServiceResource(resource model.ServiceResource) error {
	_, err := sa.db.serviceResources.InsertOne(resource)
	if err != nil {
		return errors.WrapErrorAction(logutils.ActionInsert, model.TypeServiceResource, nil, err)
	}
	return nil
}

//DeleteServiceResource deletes a service resource
func (sa *Adapter) DeleteServiceResource(id string) error {
	res, err := sa.db.serviceResources.DeleteOne(bson.M{"_id": id}, nil)
	if err != nil {
		return errors.WrapErrorAction(logutils.ActionDelete, model.TypeServiceResource, &logutils.FieldArgs{"_id": id}, err)
	}
	if res.DeletedCount != 1 {
		return errors.ErrorData(logutils.StatusMissing, model.TypeServiceResource, &logutils.FieldArgs{"_id": id})
	}
	return nil
}

//CountServiceResourcesByCategory counts the resources under a category
func (sa *Adapter) CountServiceResourcesByCategory(categoryID string) (int64, error) {
	return sa.db.serviceResources.CountDocuments(bson.M{"category_id": categoryID})
}

//FindFaiths finds all faiths
func (sa *Adapter) FindFaiths() ([]model.Faith, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	var result []model.Faith
	err := sa.db.faiths.Find(nil, &result, findOptions)
	if err != nil {
		return nil, errors.WrapErrorAction(logutils.ActionFind, model.TypeFaith, nil, err)
	}
	return result, nil
}

//InsertFaith inserts a faith
func (sa *Adapter) InsertFaith(faith model.Faith) error {
	_, err := sa.db.faiths.InsertOne(faith)
	if err != nil {
		return errors.WrapErrorAction(logutils.ActionInsert, model.TypeFaith, nil, err)
	}
	return nil
}

//DeleteFaith deletes a faith
func (sa *Adapter) DeleteFaith(id string) error {
	res, err := sa.db.faiths.DeleteOne(bson.M{"_id": id}, nil)
	if err != nil {
		return errors.WrapErrorAction(logutils.ActionDelete, model.TypeFaith, &logutils.FieldArgs{"_id": id}, err)
	}
	if res.DeletedCount != 1 {
		return errors.ErrorData(logutils.StatusMissing, model.TypeFaith, &logutils.FieldArgs{"_id": id})
	}
	return nil
}

//FindSocialCategories finds all social categories
func (sa *Adapter) FindSocialCategories() ([]model.SocialCategory, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	var result []model.SocialCategory
	err := sa.db.socialCategories.Find(nil, &result, findOptions)
	if err != nil {
		return nil, errors.WrapErrorAction(logutils.ActionFind, model.TypeSocialCategory, nil, err)
	}
	return result, nil
}

//InsertSocialCategory inserts a social category
func (sa *Adapter) InsertSocialCategory(category model.SocialCategory) error {
	_, err := sa.db.socialCategories.InsertOne(category)
	if err != nil {
		return errors.WrapErrorAction(logutils.ActionInsert, model.TypeSocialCategory, nil, err)
	}
	return nil
}

//DeleteSocialCategory deletes a social category
func (sa *Adapter) DeleteSocialCategory(id string) error {
	res, err := sa.db.socialCategories.DeleteOne(bson.M{"_id": id}, nil)
	if err != nil {
		return errors.WrapErrorAction(logutils.ActionDelete, model.TypeSocialCategory, &logutils.FieldArgs{"_id": id}, err)
	}
	if res.DeletedCount != 1 {
		return errors.ErrorData(logutils.StatusMissing, model.TypeSocialCategory, &logutils.FieldArgs{"_id": id})
	}
	return nil
}
