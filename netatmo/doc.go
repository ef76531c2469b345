// Package netatmo provides a typed client for the Netatmo home automation
// and weather station API.
//
// The client has two states. An UnauthenticatedClient only holds application
// credentials and can perform the refresh-token exchange; every data and
// command endpoint lives on AuthenticatedClient, so a missing token is a
// compile error rather than a runtime check.
//
// # Usage
//
//	creds := netatmo.ClientCredentials{
//	    ClientID:     os.Getenv("NETATMO_CLIENT_ID"),
//	    ClientSecret: os.Getenv("NETATMO_CLIENT_SECRET"),
//	}
//
//	client, err := netatmo.NewClient(creds, logger).
//	    Authenticate(ctx, os.Getenv("NETATMO_REFRESH_TOKEN"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	data, err := client.GetStationData(ctx, deviceID)
//
// Callers that already hold a valid access token can skip the exchange with
// netatmo.WithToken.
//
// All calls are synchronous: one form-encoded POST per operation, no retries
// and no caching. Failures are classified into the sentinel errors and the
// APIError/UnknownAPIError types in errors.go.
package netatmo
