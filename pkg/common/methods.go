// Package common provides shared tables used across requestkit packages.
package common

import "github.com/hashicorp/go-set/v3"

// HTTPMethods lists the request methods a prepared request may carry.
var HTTPMethods = set.From([]string{
	"GET",
	"HEAD",
	"POST",
	"PUT",
	"PATCH",
	"DELETE",
	"CONNECT",
	"OPTIONS",
	"TRACE",
})
