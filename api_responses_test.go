package trackbear

// Mock API response bodies by route type, shared across the sub-client tests.

const projectJSON = `{
	"id": 123,
	"uuid": "8fb3e519-fc08-477f-a70e-4132eca599d4",
	"createdAt": "2025-01-01",
	"updatedAt": "2025-02-02",
	"state": "active",
	"ownerId": 123,
	"title": "New Project",
	"description": "This is a mock project for some tests.",
	"phase": "planning",
	"startingBalance": {"word": 1667, "time": 0, "page": 2, "chapter": 0, "scene": 0, "line": 0},
	"cover": "cover-ref",
	"starred": true,
	"displayOnProfile": true,
	"totals": {"word": 1667, "time": 0, "page": 2, "chapter": 0, "scene": 0, "line": 0},
	"lastUpdated": "2025-02-02"
}`

const projectStubJSON = `{
	"id": 123,
	"uuid": "8fb3e519-fc08-477f-a70e-4132eca599d4",
	"createdAt": "2025-01-01",
	"updatedAt": "2025-02-02",
	"state": "active",
	"ownerId": 123,
	"title": "New Project",
	"description": "This is a mock project for some tests.",
	"phase": "planning",
	"startingBalance": {"word": 1667, "time": 0, "page": 2, "chapter": 0, "scene": 0, "line": 0},
	"cover": "cover-ref",
	"starred": true,
	"displayOnProfile": true
}`

const tagJSON = `{
	"id": 123,
	"uuid": "8fb3e519-fc08-477f-a70e-4132eca599d4",
	"createdAt": "2025-01-01",
	"updatedAt": "2025-02-02",
	"state": "active",
	"ownerId": 678,
	"name": "Pure Awesome",
	"color": "red"
}`

const tallyJSON = `{
	"id": 123,
	"uuid": "8fb3e519-fc08-477f-a70e-4132eca599d4",
	"createdAt": "2025-01-01",
	"updatedAt": "2025-02-02",
	"state": "active",
	"ownerId": 123,
	"date": "2021-03-23",
	"measure": "word",
	"count": 1667,
	"note": "Did well, enough.",
	"workId": 456,
	"work": {
		"id": 456,
		"uuid": "8fb3e519-fc08-477f-a70e-4132eca599d4",
		"createdAt": "2025-01-01",
		"updatedAt": "2025-02-02",
		"state": "active",
		"ownerId": 123,
		"title": "Some Awesome Project",
		"description": "This truly rocks",
		"phase": "planning",
		"startingBalance": {"word": 0, "time": 0, "page": 0, "chapter": 0, "scene": 0, "line": 0},
		"cover": "cover-ref",
		"starred": true,
		"displayOnProfile": true
	},
	"tags": [
		{
			"id": 987,
			"uuid": "8fb3e519-fc08-477f-a70e-4132eca599d4",
			"createdAt": "2025-01-02",
			"updatedAt": "2025-01-03",
			"state": "active",
			"ownerId": 123,
			"name": "DaBomb",
			"color": "blue"
		}
	]
}`

const statJSON = `{
	"date": "2021-03-23",
	"counts": {"word": 1000, "time": 0, "page": 0, "chapter": 0, "scene": 0, "line": 0}
}`

const leaderboardJSON = `{
	"id": 55,
	"uuid": "8fb3e519-fc08-477f-a70e-4132eca599d4",
	"createdAt": "2025-01-01",
	"updatedAt": "2025-02-02",
	"state": "active",
	"ownerId": 123,
	"title": "NaNoWriMo Crew",
	"description": "Fifty thousand words or bust.",
	"measures": ["word"],
	"startDate": "2025-11-01",
	"endDate": "2025-11-30",
	"individualGoalMode": false,
	"fundraiserMode": false,
	"isJoinable": true,
	"isPublic": false,
	"joinCode": "craft-words-4812",
	"members": [
		{
			"id": 1,
			"uuid": "8fb3e519-fc08-477f-a70e-4132eca599d4",
			"displayName": "preocts",
			"avatar": null,
			"isOwner": true,
			"isParticipant": true,
			"teamId": null
		}
	],
	"teams": []
}`

const leaderboardExtendedJSON = `{
	"id": 55,
	"uuid": "8fb3e519-fc08-477f-a70e-4132eca599d4",
	"createdAt": "2025-01-01",
	"updatedAt": "2025-02-02",
	"state": "active",
	"ownerId": 123,
	"title": "NaNoWriMo Crew",
	"description": "Fifty thousand words or bust.",
	"measures": ["word"],
	"startDate": "2025-11-01",
	"endDate": "2025-11-30",
	"individualGoalMode": false,
	"fundraiserMode": false,
	"isJoinable": true,
	"isPublic": false,
	"joinCode": "craft-words-4812",
	"members": [
		{
			"id": 1,
			"uuid": "8fb3e519-fc08-477f-a70e-4132eca599d4",
			"displayName": "preocts",
			"avatar": null,
			"isOwner": true,
			"isParticipant": true,
			"teamId": null,
			"totals": {"word": 12000}
		}
	],
	"teams": []
}`

const failureJSON = `{
	"success": false,
	"error": {
		"code": "SOME_ERROR_CODE",
		"message": "A human-readable error message"
	}
}`
