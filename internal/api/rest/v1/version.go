package v1

// BasePath is the URL prefix for all version 1 routes.
const BasePath = "/api/v1/lns"
