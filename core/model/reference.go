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
	"time"

	"github.com/rokwire/logging-library-go/v2/logutils"
)

const (
	//TypeRegion region type
	TypeRegion logutils.MessageDataType = "region"
	//TypeServiceCategory service category type
	TypeServiceCategory logutils.MessageDataType = "service category"
	//TypeServiceResource service resource type
	TypeServiceResource logutils.MessageDataType = "service resource"
	//TypeFaith faith type
	TypeFaith logutils.MessageDataType = "faith"
	//TypeSocialCategory social category type
	TypeSocialCategory logutils.MessageDataType = "social category"
)

//Region is a state/city pair selectable for a branch address
type Region struct {
	ID    string `json:"id" bson:"_id"`
	State string `json:"state" bson:"state"`
	City  string `json:"city" bson:"city"`

	DateCreated time.Time `json:"date_created" bson:"date_created"`
}

//ServiceCategory groups service resources
type ServiceCategory struct {
	ID   string `json:"id" bson:"_id"`
	Name string `json:"name" bson:"name"`

	DateCreated time.Time `json:"date_created" bson:"date_created"`
}

//ServiceResource is a concrete service offered under a category
type ServiceResource struct {
	ID         string `json:"id" bson:"_id"`
	Name       string `json:"name" bson:"name"`
	CategoryID string `json:"category_id" bson:"category_id"`

	DateCreated time.Time `json:"date_created" bson:"date_created"`
}

//Faith is a reference entity selectable during registration
type Faith struct {
	ID   string `json:"id" bson:"_id"`
	Name string `json:"name" bson:"name"`

	DateCreated time.Time `json:"date_created" bson:"date_created"`
}

//SocialCategory is a reference entity selectable during registration
type SocialCategory struct {
	ID   string `json:"id" bson:"_id"`
	Name string `json:"name" bson:"name"`

	DateCreated time.Time `json:"date_created" bson:"date_created"`
}
