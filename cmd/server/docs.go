package main

// @title Production Cost & Inventory Tracking API
// @version 1.0
// @description Multi-tenant production cost tracking: orders, actual usage with variance analysis, inventory reorder thresholds, alerts, reports and a chatbot.
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.url http://github.com/sumitd/costtrack
// @contact.email support@example.com

// @license.name MIT
// @license.url https://github.com/sumitd/costtrack/blob/main/LICENSE

// @host localhost:5000
// @BasePath /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

// @tag.name Auth
// @tag.description Registration and login endpoints

// @tag.name Orders
// @tag.description Production order and actual usage endpoints

// @tag.name Inventory
// @tag.description Inventory and reorder threshold endpoints

// @tag.name Alerts
// @tag.description Alert listing and acknowledgement endpoints

// @tag.name Reports
// @tag.description Dashboard and report endpoints

// @tag.name Chatbot
// @tag.description Data-aware chatbot endpoint

// @tag.name Health
// @tag.description Health check endpoints

// @tag.name Swagger
// @tag.description Swagger documentation endpoints
