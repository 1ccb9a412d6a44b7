package service

import (
	"context"
	"fmt"
	"html"
	"strings"

	"github.com/aaravmahajanofficial/storefront/internal/models"
	"github.com/aaravmahajanofficial/storefront/pkg/sendgrid"
)

// OrderNotifier tells shoppers about their orders.
type OrderNotifier interface {
	OrderPlaced(ctx context.Context, recipient string, order *models.Order) error
}

type emailNotifier struct {
	emailService sendgrid.EmailService
}

func NewOrderNotifier(emailService sendgrid.EmailService) OrderNotifier {
	return &emailNotifier{emailService: emailService}
}

func (n *emailNotifier) OrderPlaced(ctx context.Context, recipient string, order *models.Order) error {
	if recipient == "" {
		return fmt.Errorf("order %s has no recipient address", order.ID)
	}

	var plain, rows strings.Builder

	fmt.Fprintf(&plain, "Thanks for your order %s.\n\n", order.ID)

	for _, item := range order.Items {
		fmt.Fprintf(&plain, "%d x %s: %s\n", item.Quantity, item.Product.Name, item.LineTotal.StringFixed(2))
		fmt.Fprintf(&rows, "<tr><td>%d</td><td>%s</td><td>%s</td></tr>",
			item.Quantity, html.EscapeString(item.Product.Name), item.LineTotal.StringFixed(2))
	}

	fmt.Fprintf(&plain, "\nTotal: %s\n", order.TotalPrice.StringFixed(2))

	htmlContent := fmt.Sprintf("<p>Thanks for your order <strong>%s</strong>.</p><table>%s</table><p>Total: %s</p>",
		order.ID, rows.String(), order.TotalPrice.StringFixed(2))

	return n.emailService.Send(ctx, &sendgrid.Email{
		To:           recipient,
		Subject:      "Your order has been placed",
		PlainContent: plain.String(),
		HTMLContent:  htmlContent,
	})
}
