// Package models contains the GORM database models mapping domain
// entities to tables.
package models
