package usecase

import (
	"flex_billing/internal/domain/entities"
	"fmt"

	"github.com/shopspring/decimal"
)

const (
	eventTypeOrder    = "order"
	eventTypeCustomer = "customer"
	eventTypeFlex     = "flex"
	eventTypeTrial    = "trial"
)

func centsToDollars(cents int64) float64 {
	f, _ := decimal.New(cents, -2).Float64()
	return f
}

func formatDollars(cents int64) string {
	return "$" + decimal.New(cents, -2).StringFixed(2)
}

// composeOrderEvent builds the order/placed analytics event.
func composeOrderEvent(order entities.Order, orderContext map[string]any) entities.DomainEvent {
	props := make(map[string]any, len(orderContext)+24)
	for k, v := range orderContext {
		props[k] = v
	}
	addr := order.CustomerInfo.Address
	props["typeId"] = order.ID
	props["orderType"] = order.OrderType
	props["invoiceNumber"] = order.InvoiceNumber
	props["customer_firstName"] = order.CustomerInfo.FirstName
	props["customer_lastName"] = order.CustomerInfo.LastName
	props["customer_phone"] = order.CustomerInfo.Phone
	props["shipping_firstName"] = addr.FirstName
	props["shipping_lastName"] = addr.LastName
	props["shipping_address1"] = addr.Address1
	props["shipping_address2"] = addr.Address2
	props["shipping_city"] = addr.City
	props["shipping_state"] = addr.State
	props["shipping_zip"] = addr.Zip

	props["paid_subtotal"] = centsToDollars(order.Paid.Subtotal)
	props["paid_shipping"] = centsToDollars(order.Paid.Shipping)
	props["paid_discountTotal"] = centsToDollars(order.Paid.DiscountTotal)
	props["paid_creditUsed"] = centsToDollars(order.Paid.CreditUsed)
	props["paid_total"] = centsToDollars(order.Paid.Total)
	props["value"] = centsToDollars(order.Paid.Total)

	skus := make([]string, 0, len(order.Items))
	items := make([]map[string]any, 0, len(order.Items))
	var categories, fulfillment []string
	seenCategory := map[string]bool{}
	seenFulfillment := map[string]bool{}
	for _, it := range order.Items {
		skus = append(skus, it.ID)
		items = append(items, map[string]any{
			"sku":        it.ID,
			"name":       it.Name,
			"price":      centsToDollars(it.Price),
			"totalPrice": centsToDollars(it.TotalPrice),
			"quantity":   it.Quantity,
			"savings":    centsToDollars(it.Metadata.Savings),
		})
		for _, c := range it.Metadata.Categories {
			if !seenCategory[c] {
				seenCategory[c] = true
				categories = append(categories, c)
			}
		}
		fskus := []string{it.ID}
		if len(it.Metadata.Fulfillment) > 0 {
			fskus = fskus[:0]
			for _, f := range it.Metadata.Fulfillment {
				fskus = append(fskus, f.SKU)
			}
		}
		for _, s := range fskus {
			if !seenFulfillment[s] {
				seenFulfillment[s] = true
				fulfillment = append(fulfillment, s)
			}
		}
	}
	props["itemSkus"] = skus
	props["items"] = items
	props["itemCategories"] = categories
	props["fulfillmentSkus"] = fulfillment

	codes := make([]string, 0, len(order.Discounts))
	discounts := make([]map[string]any, 0, len(order.Discounts))
	for _, d := range order.Discounts {
		codes = append(codes, d.Code)
		discounts = append(discounts, map[string]any{
			"code":         d.Code,
			"amount":       centsToDollars(d.Amount),
			"discountType": string(d.DiscountType),
		})
	}
	props["discountCodes"] = codes
	props["discounts"] = discounts

	return entities.DomainEvent{
		Type:       eventTypeOrder,
		Action:     "placed",
		Customer:   entities.EventCustomer{ID: order.CustomerID},
		Source:     order.Source,
		Timestamp:  order.CompletionDate,
		Properties: props,
	}
}

func orderChatMessage(order entities.Order) string {
	return fmt.Sprintf("Order %s - %s %s. %s. %s",
		order.InvoiceNumber, order.CustomerInfo.FirstName, order.CustomerInfo.LastName,
		order.OrderType, formatDollars(order.Paid.Total))
}
