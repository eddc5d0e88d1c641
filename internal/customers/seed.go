package customers

// Seed returns the customers the dashboard starts with.
func Seed() []Customer {
	return []Customer{
		{ID: 1, Name: "John Smith", Email: "john.smith@email.com", Phone: "+1 (555) 123-4567", Plan: "Premium", Status: "Active", Address: "123 Main St, New York, NY 10001", JoinDate: "2024-01-15", LastActivity: "2024-04-20", TotalOrders: 24, TotalSpent: 2450.00},
		{ID: 2, Name: "Sarah Johnson", Email: "sarah.j@email.com", Phone: "+1 (555) 987-6543", Plan: "Basic", Status: "Active", Address: "456 Oak Ave, Los Angeles, CA 90210", JoinDate: "2024-02-10", LastActivity: "2024-04-18", TotalOrders: 12, TotalSpent: 890.50},
		{ID: 3, Name: "Michael Brown", Email: "mike.brown@email.com", Phone: "+1 (555) 456-7890", Plan: "Enterprise", Status: "Inactive", Address: "789 Pine St, Chicago, IL 60604", JoinDate: "2023-12-05", LastActivity: "2024-04-10", TotalOrders: 45, TotalSpent: 5670.25},
		{ID: 4, Name: "Emily Davis", Email: "emily.davis@email.com", Phone: "+1 (555) 321-0987", Plan: "Premium", Status: "Active", Address: "321 Elm St, Miami, FL 33104", JoinDate: "2024-04-08", LastActivity: "2024-04-19", TotalOrders: 18, TotalSpent: 1890.75},
		{ID: 5, Name: "David Wilson", Email: "david.w@email.com", Phone: "+1 (555) 654-3210", Plan: "Basic", Status: "Active", Address: "654 Maple Dr, Seattle, WA 98101", JoinDate: "2024-03-01", LastActivity: "2024-04-17", TotalOrders: 8, TotalSpent: 420.00},
		{ID: 6, Name: "Lisa Anderson", Email: "lisa.anderson@email.com", Phone: "+1 (555) 789-0123", Plan: "Enterprise", Status: "Active", Address: "987 Cedar Ln, Austin, TX 73301", JoinDate: "2023-11-20", LastActivity: "2024-04-21", TotalOrders: 31, TotalSpent: 4120.40},
		{ID: 7, Name: "Robert Taylor", Email: "robert.t@email.com", Phone: "+1 (555) 234-5678", Plan: "Basic", Status: "Inactive", Address: "147 Birch Rd, Denver, CO 80201", JoinDate: "2024-01-28", LastActivity: "2024-03-02", TotalOrders: 2, TotalSpent: 59.98},
		{ID: 8, Name: "Jennifer Martinez", Email: "jen.martinez@email.com", Phone: "+1 (555) 876-5432", Plan: "Premium", Status: "Active", Address: "258 Spruce Ct, Boston, MA 02101", JoinDate: "2024-02-22", LastActivity: "2024-04-16", TotalOrders: 15, TotalSpent: 1675.10},
		{ID: 9, Name: "Christopher Lee", Email: "chris.lee@email.com", Phone: "+1 (555) 345-6789", Plan: "Enterprise", Status: "Active", Address: "369 Walnut Ave, Portland, OR 97201", JoinDate: "2023-10-14", LastActivity: "2024-04-22", TotalOrders: 27, TotalSpent: 3980.00},
		{ID: 10, Name: "Amanda White", Email: "amanda.white@email.com", Phone: "+1 (555) 567-8901", Plan: "Basic", Status: "Inactive", Address: "741 Ash Blvd, Phoenix, AZ 85001", JoinDate: "2024-03-18", LastActivity: "2024-03-30", TotalOrders: 5, TotalSpent: 210.35},
	}
}
