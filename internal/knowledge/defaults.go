package knowledge

// DefaultChunks is the built-in knowledge base. A config file can replace it
// wholesale; there is no partial merge.
var DefaultChunks = []Chunk{
	{
		Text:     "Shipping: standard shipping takes 3-5 business days and costs $4.99. Orders over $50 ship free. Express shipping (1-2 business days) is available at checkout for $12.99.",
		Keywords: []string{"shipping", "delivery", "ship", "arrive"},
	},
	{
		Text:     "Returns: items can be returned within 30 days of delivery for a full refund, provided they are unused and in original packaging. Refunds are issued to the original payment method within 5 business days.",
		Keywords: []string{"return", "refund", "exchange"},
	},
	{
		Text:     "Opening hours: our studio is open Monday to Friday 9:00-18:00 and Saturday 10:00-16:00. We are closed on Sundays and public holidays.",
		Keywords: []string{"hours", "open", "close", "schedule"},
	},
	{
		Text:     "Services: we offer haircuts, coloring, styling and repairs. Appointments can be booked online or by phone; walk-ins are accepted subject to availability.",
		Keywords: []string{"service", "haircut", "coloring", "styling", "appointment", "book"},
	},
}
