package sendgrid_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	sendgrid_client "github.com/aaravmahajanofficial/storefront/pkg/sendgrid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEmailService(t *testing.T) {
	// Act
	service := sendgrid_client.NewEmailService("test-api-key", "sender@example.com", "Test Sender")

	// Assert
	assert.NotNil(t, service)
	assert.NotNil(t, service.GetSendGridClient())
}

type sendgridV3Payload struct {
	Personalizations []struct {
		To      []map[string]string `json:"to"`
		Cc      []map[string]string `json:"cc,omitempty"`
		Bcc     []map[string]string `json:"bcc,omitempty"`
		Subject string              `json:"subject"`
	} `json:"personalizations"`
	From    map[string]string `json:"from"`
	Content []struct {
		Type  string `json:"type"`
		Value string `json:"value"`
	} `json:"content"`
}

func TestEmailService_Send(t *testing.T) {
	apiKey := "SG.test-api-key"
	fromEmail := "orders@example.com"
	fromName := "Storefront"

	tests := []struct {
		name          string
		email         *sendgrid_client.Email
		status        int
		expectedError string
		checkPayload  func(t *testing.T, payload sendgridV3Payload)
	}{
		{
			name: "Success - Plain And HTML",
			email: &sendgrid_client.Email{
				To:           "buyer@example.com",
				Subject:      "Order received",
				PlainContent: "Thanks for your order",
				HTMLContent:  "<p>Thanks for your order</p>",
			},
			status: http.StatusAccepted,
			checkPayload: func(t *testing.T, p sendgridV3Payload) {
				require.Len(t, p.Personalizations, 1)
				pers := p.Personalizations[0]
				require.Len(t, pers.To, 1)
				assert.Equal(t, "buyer@example.com", pers.To[0]["email"])
				assert.Empty(t, pers.Cc)
				assert.Equal(t, "Order received", pers.Subject)

				assert.Equal(t, fromEmail, p.From["email"])
				assert.Equal(t, fromName, p.From["name"])

				require.Len(t, p.Content, 2)
				assert.Equal(t, "text/plain", p.Content[0].Type)
				assert.Equal(t, "text/html", p.Content[1].Type)
			},
		},
		{
			name: "Success - Plain Only With CC",
			email: &sendgrid_client.Email{
				To:           "buyer@example.com",
				CC:           []string{"ops@example.com"},
				BCC:          []string{"audit@example.com"},
				Subject:      "Payment confirmed",
				PlainContent: "Paid",
			},
			status: http.StatusAccepted,
			checkPayload: func(t *testing.T, p sendgridV3Payload) {
				require.Len(t, p.Personalizations, 1)
				pers := p.Personalizations[0]
				require.Len(t, pers.Cc, 1)
				assert.Equal(t, "ops@example.com", pers.Cc[0]["email"])
				require.Len(t, pers.Bcc, 1)
				assert.Equal(t, "audit@example.com", pers.Bcc[0]["email"])

				require.Len(t, p.Content, 1)
				assert.Equal(t, "Paid", p.Content[0].Value)
			},
		},
		{
			name:          "Failure - API Error (4xx)",
			email:         &sendgrid_client.Email{To: "bad@example.com", Subject: "x", PlainContent: "y"},
			status:        http.StatusBadRequest,
			expectedError: "failed to send email, status code: 400",
		},
		{
			name:          "Failure - API Error (5xx)",
			email:         &sendgrid_client.Email{To: "buyer@example.com", Subject: "x", PlainContent: "y"},
			status:        http.StatusInternalServerError,
			expectedError: "failed to send email, status code: 500",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			// Arrange
			var payload sendgridV3Payload

			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodPost, r.Method)
				assert.Equal(t, "Bearer "+apiKey, r.Header.Get("Authorization"))

				body, err := io.ReadAll(r.Body)
				assert.NoError(t, err)
				assert.NoError(t, json.Unmarshal(body, &payload))

				w.WriteHeader(tc.status)
			}))
			defer server.Close()

			service := sendgrid_client.NewEmailService(apiKey, fromEmail, fromName)
			service.GetSendGridClient().Request.BaseURL = server.URL

			// Act
			err := service.Send(t.Context(), tc.email)

			// Assert
			if tc.expectedError == "" {
				require.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tc.expectedError)
			}

			if tc.checkPayload != nil {
				tc.checkPayload(t, payload)
			}
		})
	}

	t.Run("Failure - Missing Recipient", func(t *testing.T) {
		service := sendgrid_client.NewEmailService(apiKey, fromEmail, fromName)

		err := service.Send(t.Context(), &sendgrid_client.Email{Subject: "x"})

		assert.EqualError(t, err, "email recipient is required")
	})

	t.Run("Failure - Network Error", func(t *testing.T) {
		// Arrange
		server := httptest.NewServer(http.NotFoundHandler())
		service := sendgrid_client.NewEmailService(apiKey, fromEmail, fromName)
		service.GetSendGridClient().Request.BaseURL = server.URL
		server.Close()

		// Act
		err := service.Send(t.Context(), &sendgrid_client.Email{To: "buyer@example.com", Subject: "x", PlainContent: "y"})

		// Assert
		assert.Error(t, err)
	})
}
