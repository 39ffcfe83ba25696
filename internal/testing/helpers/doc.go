// Package helpers provides test utility functions for the Motion API.
//
// # Request Building
//
//	req := helpers.NewRequest(t, http.MethodPost, "/api/adventures").
//	    WithBody(map[string]interface{}{"userId": "u1", "title": "Picnic"}).
//	    Build()
//
// # Assertion Helpers
//
//	helpers.AssertStatus(t, rec, http.StatusBadRequest)
//	helpers.AssertAPIError(t, rec, http.StatusNotFound, "Adventure not found")
//
// # Pointer Helpers
//
//	cost := helpers.StringPtr("$$")
//	fav := helpers.BoolPtr(true)
package helpers
