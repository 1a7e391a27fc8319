package graph

// Schema is the SDL served by the API. Field resolution lives on the
// resolver types in resolver.go.
const Schema = `
	schema {
		query: Query
		mutation: Mutation
	}

	type User {
		id: ID!
		username: String!
		password: String!
		createdEvents: [Event!]!
		attendedEvents: [Event!]!
	}

	type Event {
		id: ID!
		name: String!
		date: String!
		location: String!
		creator: User!
		attendees: [User!]!
	}

	type Query {
		events: [Event!]!
		event(id: ID!): Event
		user: User
	}

	type Mutation {
		registerUser(username: String!, password: String!): String
		loginUser(username: String!, password: String!): String
		createEvent(name: String!, date: String!, location: String!): Event
		updateEvent(id: ID!, name: String!, date: String!, location: String!): Event
		deleteEvent(id: ID!): Event
		updateEventAttendance(eventId: ID!, status: String!): Event
	}
`
