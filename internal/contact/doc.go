// Package contact implements the contact form submission pipeline:
// validate the raw payload, persist it to the contact_messages collection,
// notify the admin by email, then send a best-effort confirmation to the
// submitter. Storage is the durability gate - email is never attempted for
// a submission that was not stored.
package contact
