// Package types defines the Trip, ItineraryItem, and Experience entity
// types and the standard error values shared by the scheduling engine.
package types
