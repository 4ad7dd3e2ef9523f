// Package api provides a Bitvavo REST API client for account history.
//
// REST endpoint:
//   - Production: https://api.bitvavo.com/v2
//
// Endpoints used: GET /trades (per market), GET /depositHistory (all assets).
// Every request is signed with the account's API key and secret (see package auth).
package api
