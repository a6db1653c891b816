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

package main

import (
	"strconv"
	"strings"

	"registry-building-block/core"
	"registry-building-block/driven/emailer"
	"registry-building-block/driven/storage"
	"registry-building-block/driver/web"

	"github.com/rokwire/core-auth-library-go/v3/authservice"
	"github.com/rokwire/core-auth-library-go/v3/envloader"
	"github.com/rokwire/logging-library-go/v2/logs"
)

var (
	// Version : version of this executable
	Version string
	// Build : build date of this executable
	Build string
)

func main() {
	if len(Version) == 0 {
		Version = "dev"
	}

	serviceID := "registry"

	loggerOpts := logs.LoggerOpts{SuppressRequests: logs.NewStandardHealthCheckHTTPRequestProperties(serviceID + "/version")}
	logger := logs.NewLogger(serviceID, &loggerOpts)
	envLoader := envloader.NewEnvLoader(Version, logger)

	level := envLoader.GetAndLogEnvVar("REGISTRY_LOG_LEVEL", false, false)
	logLevel := logs.LogLevelFromString(level)
	if logLevel != nil {
		logger.SetLevel(*logLevel)
	}

	env := envLoader.GetAndLogEnvVar("REGISTRY_ENVIRONMENT", true, false) //local, dev, staging, prod
	port := envLoader.GetAndLogEnvVar("REGISTRY_PORT", false, false)
	if port == "" {
		port = "80"
	}
	host := envLoader.GetAndLogEnvVar("REGISTRY_HOST", true, false)

	// mongoDB adapter
	mongoDBAuth := envLoader.GetAndLogEnvVar("REGISTRY_MONGO_AUTH", true, true)
	mongoDBName := envLoader.GetAndLogEnvVar("REGISTRY_MONGO_DATABASE", true, false)
	mongoTimeout := envLoader.GetAndLogEnvVar("REGISTRY_MONGO_TIMEOUT", false, false)
	storageAdapter := storage.NewStorageAdapter(mongoDBAuth, mongoDBName, mongoTimeout, logger)
	err := storageAdapter.Start()
	if err != nil {
		logger.Fatalf("Cannot start the mongoDB adapter: %v", err)
	}

	// emailer adapter
	smtpHost := envLoader.GetAndLogEnvVar("REGISTRY_SMTP_HOST", false, false)
	smtpPort := envLoader.GetAndLogEnvVar("REGISTRY_SMTP_PORT", false, false)
	smtpUser := envLoader.GetAndLogEnvVar("REGISTRY_SMTP_USER", false, true)
	smtpPassword := envLoader.GetAndLogEnvVar("REGISTRY_SMTP_PASSWORD", false, true)
	smtpFrom := envLoader.GetAndLogEnvVar("REGISTRY_SMTP_EMAIL_FROM", false, false)
	smtpPortNum, _ := strconv.Atoi(smtpPort)
	emailerAdapter := emailer.NewEmailerAdapter(smtpHost, smtpPortNum, smtpUser, smtpPassword, smtpFrom, logger)

	// auth service registrations, loaded from the core building block
	coreBBHost := envLoader.GetAndLogEnvVar("REGISTRY_CORE_BB_HOST", true, false)
	serviceURL := envLoader.GetAndLogEnvVar("REGISTRY_SERVICE_URL", true, false)

	authService := authservice.AuthService{ServiceID: serviceID, ServiceHost: serviceURL,
		FirstParty: true, AuthBaseURL: coreBBHost}
	serviceRegLoader, err := authservice.NewRemoteServiceRegLoader(&authService, []string{"auth"})
	if err != nil {
		logger.Fatalf("Error initializing service reg loader: %v", err)
	}
	serviceRegManager, err := authservice.NewServiceRegManager(&authService, serviceRegLoader,
		!strings.HasPrefix(serviceURL, "http://localhost"))
	if err != nil {
		logger.Fatalf("Error initializing service reg manager: %v", err)
	}

	// core
	coreAPIs := core.NewCoreAPIs(env, Version, Build, storageAdapter, logger)
	coreAPIs.AddStatusListener(emailerAdapter)
	// TODO register core.NewTranslationFanoutListener(storageAdapter, logger) once the
	// volunteer translation tooling goes live; until then jobs are fanned out on
	// language activation only
	coreAPIs.Start()

	// web adapter
	auth, err := web.NewAuth(serviceRegManager, logger)
	if err != nil {
		logger.Fatalf("Error initializing auth: %v", err)
	}
	webAdapter := web.NewWebAdapter(coreAPIs, auth, host, port, logger)
	webAdapter.Start()
}
