// Package docs provides Swagger documentation for the API.
package docs

// @title ContentFlow Backend API
// @version 1.0
// @description API for the ContentFlow content creation platform
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.url https://www.contentflowhq.com/support
// @contact.email support@contentflowhq.com

// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080
// @BasePath /api/v1
// @schemes http https
