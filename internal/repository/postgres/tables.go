package postgres

import "github.com/stayloop/stayloop/internal/types"

func withBaseColumns(cols ...string) []string {
	return append(cols, types.BaseModelColumns...)
}

var (
	tenantTable = Table{
		Name:    "tenants",
		Entity:  "tenant",
		Columns: []string{"id", "name", "slug", "status", "created_at", "updated_at"},
	}

	userTable = Table{
		Name:         "users",
		Entity:       "user",
		Columns:      withBaseColumns("id", "email", "name", "password_hash", "role"),
		TenantScoped: true,
		SoftDeletes:  true,
	}

	destinationTable = Table{
		Name:         "destinations",
		Entity:       "destination",
		Columns:      withBaseColumns("id", "name", "slug", "country", "region", "description", "visibility"),
		TenantScoped: true,
		SoftDeletes:  true,
	}

	tagTable = Table{
		Name:         "tags",
		Entity:       "tag",
		Columns:      withBaseColumns("id", "name", "slug"),
		TenantScoped: true,
		SoftDeletes:  true,
	}

	accommodationTable = Table{
		Name:   "accommodations",
		Entity: "accommodation",
		Columns: withBaseColumns(
			"id", "destination_id", "host_id", "name", "summary",
			"max_guests", "bedrooms", "nightly_rate", "currency_code", "visibility",
		),
		TenantScoped: true,
		SoftDeletes:  true,
	}

	eventTable = Table{
		Name:   "events",
		Entity: "event",
		Columns: withBaseColumns(
			"id", "destination_id", "name", "description", "starts_at", "ends_at",
			"capacity", "ticket_price", "currency_code", "visibility",
		),
		TenantScoped: true,
		SoftDeletes:  true,
	}

	bookingTable = Table{
		Name:   "bookings",
		Entity: "booking",
		Columns: withBaseColumns(
			"id", "accommodation_id", "guest_id", "check_in", "check_out",
			"guests", "total_amount", "currency_code", "booking_status",
		),
		TenantScoped: true,
		SoftDeletes:  true,
	}

	subscriptionTable = Table{
		Name:   "subscriptions",
		Entity: "subscription",
		Columns: withBaseColumns(
			"id", "user_id", "plan_key", "subscription_status", "amount",
			"currency_code", "current_period_start", "current_period_end", "cancelled_at",
		),
		TenantScoped: true,
		SoftDeletes:  true,
	}

	invoiceTable = Table{
		Name:   "invoices",
		Entity: "invoice",
		Columns: withBaseColumns(
			"id", "invoice_number", "customer_id", "booking_id", "subscription_id",
			"invoice_status", "payment_status", "currency_code",
			"amount_due", "amount_paid", "due_date",
		),
		TenantScoped: true,
		SoftDeletes:  true,
	}

	invoiceLineItemTable = Table{
		Name:   "invoice_line_items",
		Entity: "invoice_line_item",
		Columns: withBaseColumns(
			"id", "invoice_id", "description", "quantity", "unit_price", "amount",
		),
		TenantScoped: true,
		SoftDeletes:  true,
	}

	promotionTable = Table{
		Name:   "promotions",
		Entity: "promotion",
		Columns: withBaseColumns(
			"id", "code", "name", "type", "amount_off", "percentage_off",
			"currency_code", "redeem_after", "redeem_before",
			"max_redemptions", "total_redemptions", "rules",
		),
		TenantScoped: true,
		SoftDeletes:  true,
	}

	catalogTable = Table{
		Name:   "catalogs",
		Entity: "catalog",
		Columns: withBaseColumns(
			"id", "name", "pricing_model", "base_price", "weekend_multiplier", "currency_code",
		),
		TenantScoped: true,
		SoftDeletes:  true,
	}
)
