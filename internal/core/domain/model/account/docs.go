// Package account provides the User entity for the two platform roles:
// admins operate the whole service, merchants own parcels and pickup
// requests. Accounts carry a bcrypt password hash and an
// active/inactive/suspended lifecycle flag checked at sign-in.
package account
