// Package storage persists generated and client-rendered passport images and
// returns the public URL they can be fetched from.
//
// Three interchangeable stores are provided: LocalStore writes files under a
// directory served by the HTTP server, S3Store uploads to an S3 bucket and
// CloudinaryStore uploads to a Cloudinary account. New selects one from
// configuration.
package storage
