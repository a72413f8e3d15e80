// Package ovhapi is a client for the OVHcloud API.
//
// Every authenticated call goes through the same chain: the server time is
// fetched from auth/time, the request is signed with the application secret
// and consumer key, then sent and classified. A response outside 2xx that
// the caller did not tolerate becomes a *ResponseError. I/O failures become
// a *TransportError and bodies that do not match the expected type become a
// *DecodeError. The client never retries.
//
// Credentials are held by the Client and never appear in logs or errors.
package ovhapi
