// Package devapi is an in-memory implementation of the Prepare Together
// HTTP API for local development and tests.
//
// HTTP API
//
//	GET /check-email?email=<address>
//	    {"exists": bool}. 400 when the parameter is missing.
//
//	POST /register {username, password, email, role, profession, technologies}
//	    201 {"message": "User registered successfully"}. 400 "Missing <field>
//	    field" when a key is absent, 409 when the e-mail is taken.
//
//	POST /login {email, password}
//	    {"access_token": "<jwt>"}. 401 "Invalid credentials".
//
//	GET /profile  (Authorization: Bearer <jwt>)
//	    {"user": {id, username, email, role, profession, technologies}}.
//
// Failures carry {"error": "<text>"}. All state is held in memory and lost on
// exit. Passwords are kept as bcrypt hashes and access tokens are HS256 JWTs
// whose subject is the user's e-mail.
package devapi
