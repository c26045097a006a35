package catalog

// DemoProducts is the electronics assortment the development server starts with.
func DemoProducts() []Product {
	return []Product{
		{ID: "p-1001", Name: "Volt X1 Smartphone", Brand: "Volt", Category: "phones", Description: "6.1\" OLED, 128 GB", Price: 69900, Stock: 25},
		{ID: "p-1002", Name: "Volt X1 Pro Smartphone", Brand: "Volt", Category: "phones", Description: "6.7\" OLED, 256 GB", Price: 99900, Stock: 10},
		{ID: "p-2001", Name: "AirBook 14 Laptop", Brand: "Northwind", Category: "laptops", Description: "14\", 16 GB RAM, 512 GB SSD", Price: 129999, Stock: 8},
		{ID: "p-3001", Name: "Pulse ANC Headphones", Brand: "Sonora", Category: "audio", Description: "Over-ear, active noise cancelling", Price: 24950, Stock: 40},
		{ID: "p-3002", Name: "Pulse Buds", Brand: "Sonora", Category: "audio", Price: 12900, Stock: 60},
		{ID: "p-4001", Name: "USB-C Charger 65W", Brand: "Volt", Category: "accessories", Price: 3999, Stock: 150},
		{ID: "p-4002", Name: "Braided USB-C Cable 2m", Brand: "Volt", Category: "accessories", Price: 1499, Stock: 300},
		{ID: "p-5001", Name: "Vista 27 4K Monitor", Brand: "Northwind", Category: "monitors", Description: "27\" IPS, 60 Hz", Price: 38900, Stock: 12},
	}
}
