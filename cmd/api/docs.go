package main

// @title GoG Commerce API
// @version 1.0
// @description E-commerce backend: catalog, cart, checkout, wishlists, contact inbox and payments, with full observability (Prometheus, Jaeger, zerolog)
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.email support@example.com

// @license.name MIT

// @host localhost:8080
// @BasePath /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

// @tag.name Auth
// @tag.description Registration and login

// @tag.name Users
// @tag.description Profile endpoints

// @tag.name Catalog
// @tag.description Product browsing

// @tag.name Carts
// @tag.description Shopping cart

// @tag.name Orders
// @tag.description Checkout and order history

// @tag.name Wishlists
// @tag.description Named wishlists

// @tag.name Contact
// @tag.description Contact form

// @tag.name Payment
// @tag.description Payment gateway orders and verification

// @tag.name Admin
// @tag.description Admin-only endpoints

// @tag.name Health
// @tag.description Health check endpoints
