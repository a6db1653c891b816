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

package emailer

import (
	"fmt"
	"strings"

	"registry-building-block/core/model"

	"gopkg.in/gomail.v2"

	"github.com/rokwire/logging-library-go/v2/errors"
	"github.com/rokwire/logging-library-go/v2/logs"
	"github.com/rokwire/logging-library-go/v2/logutils"
)

const (
	typeMail logutils.MessageDataType = "mail"
)

// Adapter sends email notifications over an SMTP connection.
// It is registered as a status listener so registrants hear about review outcomes.
type Adapter struct {
	smtpHost     string
	smtpPortNum  int
	smtpUser     string
	smtpPassword string
	smtpFrom     string
	emailDialer  *gomail.Dialer

	logger *logs.Logger
}

// OnOrganizationStatusChanged emails the primary contact about the review outcome
func (a *Adapter) OnOrganizationStatusChanged(organization model.Organization, statusBefore model.OrganizationStatus) {
	contact := organization.PrimaryContact()
	if contact == nil {
		a.logger.Warnf("no primary contact for organization %s, skipping notification", organization.CustomID)
		return
	}

	subject, body := statusMessage(organization)
	if subject == "" {
		return
	}

	err := a.Send(contact.Email, subject, body, nil)
	if err != nil {
		a.logger.Errorf("error sending status notification for %s - %s", organization.CustomID, err)
	}
}

func statusMessage(organization model.Organization) (string, string) {
	switch organization.Status {
	case model.OrgStatusApproved:
		return fmt.Sprintf("Registration %s approved", organization.CustomID),
			fmt.Sprintf("<p>Your organization <b>%s</b> has been approved and listed with id %s.</p>",
				organization.Name, organization.CustomID)
	case model.OrgStatusRejected:
		return fmt.Sprintf("Registration %s rejected", organization.CustomID),
			fmt.Sprintf("<p>Your organization <b>%s</b> could not be approved. Please check the review notes.</p>",
				organization.Name)
	case model.OrgStatusClarificationRequested:
		return fmt.Sprintf("Registration %s needs clarification", organization.CustomID),
			fmt.Sprintf("<p>The review of <b>%s</b> needs more information from you. Please check the review notes.</p>",
				organization.Name)
	}
	return "", ""
}

// Send is used to send emails using Smtp connection
func (a *Adapter) Send(toEmail string, subject string, body string, attachmentFilename *string) error {
	if a.emailDialer == nil {
		return errors.ErrorData(logutils.StatusMissing, "email dialer", nil)
	}
	if toEmail == "" {
		return errors.ErrorData(logutils.StatusMissing, "email addresses", nil)
	}

	emails := strings.Split(toEmail, ",")

	m := gomail.NewMessage()
	m.SetHeader("From", a.smtpFrom)
	m.SetHeader("To", emails...)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", body)
	if attachmentFilename != nil {
		m.Attach(*attachmentFilename)
	}

	if err := a.emailDialer.DialAndSend(m); err != nil {
		return errors.WrapErrorAction(logutils.ActionSend, typeMail, nil, err)
	}
	return nil
}

// NewEmailerAdapter creates a new emailer adapter instance
func NewEmailerAdapter(smtpHost string, smtpPortNum int, smtpUser string, smtpPassword string, smtpFrom string, logger *logs.Logger) *Adapter {
	emailDialer := gomail.NewDialer(smtpHost, smtpPortNum, smtpUser, smtpPassword)

	return &Adapter{smtpHost: smtpHost, smtpPortNum: smtpPortNum, smtpUser: smtpUser, smtpPassword: smtpPassword,
		smtpFrom: smtpFrom, emailDialer: emailDialer, logger: logger}
}
