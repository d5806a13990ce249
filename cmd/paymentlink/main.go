package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"lidio-service/internal/app/config"
	"lidio-service/internal/app/drivers/logger"
	"lidio-service/internal/app/services/core/payments"
	"lidio-service/internal/app/services/shared/lidio"
	"lidio-service/internal/pkg/constvars"
	"lidio-service/internal/pkg/dto/requests"
	"lidio-service/internal/pkg/utils"

	"github.com/goccy/go-json"
	"github.com/sirupsen/logrus"
)

// Version sets the default build version
var Version = "develop"

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	flags := flag.NewFlagSet("paymentlink", flag.ContinueOnError)
	flags.SetOutput(stderr)
	requestFile := flags.String("file", "", "JSON file holding a payment link request")
	submit := flags.Bool("submit", false, "send the request to Lidio instead of printing it")
	notificationFile := flags.String("verify", "", "JSON file holding a raw payment notification")
	signature := flags.String("signature", "", "parametershash header that came with the notification")
	if err := flags.Parse(args); err != nil {
		return 2
	}

	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()
	log := logger.NewLogrusLogger(driverConfig, internalConfig, stderr)
	log.WithField("version", Version).Debug("paymentlink starting")

	if err := internalConfig.Validate(); err != nil {
		log.WithError(err).Error("invalid configuration")
		return 1
	}
	client, err := lidio.NewClient(
		internalConfig.LidioCredentials(),
		lidio.WithHTTPClient(&http.Client{Timeout: time.Duration(internalConfig.Lidio.RequestTimeoutInSeconds) * time.Second}),
	)
	if err != nil {
		log.WithError(err).Error("cannot create lidio client")
		return 1
	}

	switch {
	case *notificationFile != "":
		return verifyNotification(client, *notificationFile, *signature, stdout, log)
	case *requestFile != "":
		return buildPaymentLink(client, *requestFile, *submit, stdout, log)
	default:
		flags.Usage()
		return 2
	}
}

func buildPaymentLink(client *lidio.Client, path string, submit bool, stdout io.Writer, log *logrus.Logger) int {
	raw, err := os.ReadFile(path)
	if err != nil {
		log.WithError(err).WithField("file", path).Error("cannot read request file")
		return 1
	}

	request := new(requests.CreatePaymentLink)
	if err := json.Unmarshal(raw, request); err != nil {
		log.WithError(err).Error("request file is not valid JSON")
		return 1
	}
	utils.SanitizeCreatePaymentLinkRequest(request)

	builder := client.PaymentLink()
	if err := payments.ApplyCreatePaymentLink(builder, request); err != nil {
		log.WithError(err).Error("request rejected")
		return 1
	}

	if !submit {
		body, err := builder.Finalize()
		if err != nil {
			log.WithError(err).Error("request incomplete")
			return 1
		}
		return writeJSON(stdout, body, log)
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	response, err := builder.Submit(ctx)
	if err != nil {
		log.WithError(err).Error("payment link not created")
		return 1
	}
	log.WithFields(logrus.Fields{
		constvars.LoggingOrderIDKey: response.OrderID,
		"link_url":                  response.LinkURL,
	}).Info("payment link created")
	return writeJSON(stdout, response.ToMap(false), log)
}

func verifyNotification(client *lidio.Client, path, signature string, stdout io.Writer, log *logrus.Logger) int {
	raw, err := os.ReadFile(path)
	if err != nil {
		log.WithError(err).WithField("file", path).Error("cannot read notification file")
		return 1
	}

	header := http.Header{}
	header.Set(constvars.LidioHeaderParametersHash, signature)
	notification, err := client.HandleWebhook(raw, header)
	if err != nil {
		log.WithError(err).Error("notification rejected")
		return 1
	}

	if !notification.VerifySignatures() {
		log.WithField(constvars.LoggingOrderIDKey, notification.OrderID()).
			Warn("notification signature does not match")
		return 1
	}

	log.WithFields(logrus.Fields{
		constvars.LoggingOrderIDKey:    notification.OrderID(),
		constvars.LoggingPaymentResult: notification.PaymentResult(),
	}).Info("notification verified")
	return writeJSON(stdout, notification, log)
}

func writeJSON(stdout io.Writer, value interface{}, log *logrus.Logger) int {
	encoded, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		log.WithError(err).Error("cannot encode output")
		return 1
	}
	fmt.Fprintln(stdout, string(encoded))
	return 0
}
