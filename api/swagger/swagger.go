package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "Exam Feedback API",
        "description": "Weekly mock-exam configuration and Korean feedback message generation",
        "version": "0.1.0"
    },
    "basePath": "/api/v1",
    "schemes": [
        "http"
    ],
    "tags": [
        {"name": "Weeks", "description": "Exam week window and weekly setup"},
        {"name": "Configs", "description": "Per-week exam configuration"},
        {"name": "Messages", "description": "Feedback message composition"},
        {"name": "Records", "description": "Feedback record history"},
        {"name": "Template", "description": "Editable message template"}
    ],
    "paths": {
        "/weeks": {
            "get": {
                "tags": ["Weeks"],
                "summary": "Selectable exam weeks",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/weeks/current": {
            "get": {
                "tags": ["Weeks"],
                "summary": "Current exam week",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/weeks/completeness": {
            "get": {
                "tags": ["Weeks"],
                "summary": "Weekly setup completeness",
                "parameters": [
                    {"name": "week", "in": "query", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/weeks/cuts": {
            "put": {
                "tags": ["Weeks"],
                "summary": "Bulk weekly cutoff setup",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/WeekCutsRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/configs": {
            "get": {
                "tags": ["Configs"],
                "summary": "Get exam configuration",
                "parameters": [
                    {"name": "gradeLevel", "in": "query", "required": true, "type": "string", "enum": ["middle3_high1", "high2", "high3"]},
                    {"name": "week", "in": "query", "required": true, "type": "string"},
                    {"name": "subject", "in": "query", "type": "string", "enum": ["language_media", "speech_writing"]}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "put": {
                "tags": ["Configs"],
                "summary": "Save full exam configuration",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/ExamConfig"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/configs/editor": {
            "get": {
                "tags": ["Configs"],
                "summary": "Get exam configuration for editing",
                "parameters": [
                    {"name": "gradeLevel", "in": "query", "required": true, "type": "string", "enum": ["middle3_high1", "high2", "high3"]},
                    {"name": "week", "in": "query", "required": true, "type": "string"},
                    {"name": "subject", "in": "query", "type": "string", "enum": ["language_media", "speech_writing"]}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/configs/explanations": {
            "post": {
                "tags": ["Configs"],
                "summary": "Add or replace one explanation",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/UpsertExplanationRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "delete": {
                "tags": ["Configs"],
                "summary": "Delete one explanation",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/DeleteExplanationRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/configs/difficulty": {
            "put": {
                "tags": ["Configs"],
                "summary": "Set exam difficulty flag",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/SetDifficultyRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/messages/preview": {
            "post": {
                "tags": ["Messages"],
                "summary": "Compose a feedback message without recording it",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/ComposeRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/messages": {
            "post": {
                "tags": ["Messages"],
                "summary": "Compose a feedback message and record it",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/ComposeRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/records/today": {
            "get": {
                "tags": ["Records"],
                "summary": "Today's feedback records",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/records": {
            "get": {
                "tags": ["Records"],
                "summary": "Feedback records for a date",
                "parameters": [
                    {"name": "date", "in": "query", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/records/{id}": {
            "delete": {
                "tags": ["Records"],
                "summary": "Delete a feedback record",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "204": {"description": "No Content"},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/template": {
            "get": {
                "tags": ["Template"],
                "summary": "Get the message template",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "put": {
                "tags": ["Template"],
                "summary": "Replace the message template",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/MessageTemplate"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        }
    },
    "definitions": {
        "GradeCuts": {
            "type": "object",
            "properties": {
                "grade1": {"type": "number"},
                "grade2": {"type": "number"},
                "grade3": {"type": "number"},
                "grade4": {"type": "number"}
            }
        },
        "ExplanationItem": {
            "type": "object",
            "properties": {
                "questionNumber": {"type": "integer"},
                "area": {"type": "string"},
                "explanation": {"type": "string"}
            }
        },
        "ExamConfig": {
            "type": "object",
            "properties": {
                "gradeLevel": {"type": "string", "enum": ["middle3_high1", "high2", "high3"]},
                "subjectType": {"type": "string", "enum": ["language_media", "speech_writing"]},
                "examWeek": {"type": "string"},
                "isHard": {"type": "boolean"},
                "gradeCuts": {"$ref": "#/definitions/GradeCuts"},
                "explanations": {"type": "object"}
            }
        },
        "WeekCutsRequest": {
            "type": "object",
            "required": ["week", "cuts"],
            "properties": {
                "week": {"type": "string"},
                "cuts": {
                    "type": "object",
                    "properties": {
                        "middle3_high1": {"$ref": "#/definitions/GradeCuts"},
                        "high2_language_media": {"$ref": "#/definitions/GradeCuts"},
                        "high2_speech_writing": {"$ref": "#/definitions/GradeCuts"},
                        "high3_language_media": {"$ref": "#/definitions/GradeCuts"},
                        "high3_speech_writing": {"$ref": "#/definitions/GradeCuts"}
                    }
                }
            }
        },
        "UpsertExplanationRequest": {
            "type": "object",
            "required": ["gradeLevel", "week", "area", "questionNumber", "explanation"],
            "properties": {
                "gradeLevel": {"type": "string"},
                "week": {"type": "string"},
                "subject": {"type": "string"},
                "area": {"type": "string"},
                "questionNumber": {"type": "integer"},
                "explanation": {"type": "string"}
            }
        },
        "DeleteExplanationRequest": {
            "type": "object",
            "required": ["gradeLevel", "week", "area", "questionNumber"],
            "properties": {
                "gradeLevel": {"type": "string"},
                "week": {"type": "string"},
                "subject": {"type": "string"},
                "area": {"type": "string"},
                "questionNumber": {"type": "integer"}
            }
        },
        "SetDifficultyRequest": {
            "type": "object",
            "required": ["gradeLevel", "week"],
            "properties": {
                "gradeLevel": {"type": "string"},
                "week": {"type": "string"},
                "subject": {"type": "string"},
                "isHard": {"type": "boolean"}
            }
        },
        "ComposeRequest": {
            "type": "object",
            "required": ["name", "gradeLevel", "examWeek"],
            "properties": {
                "name": {"type": "string"},
                "gradeLevel": {"type": "string"},
                "examWeek": {"type": "string"},
                "subject": {"type": "string"},
                "score": {"type": "number"},
                "mainWrongAreas": {"type": "array", "items": {"type": "string"}},
                "wrongAnswers": {"type": "object"},
                "additionalFeedback": {"type": "string"}
            }
        },
        "MessageTemplate": {
            "type": "object",
            "properties": {
                "closing": {"type": "string"},
                "hardExamPhrase": {"type": "string"},
                "normalExamPhrase": {"type": "string"},
                "endingMessage": {"type": "string"}
            }
        },
        "APIError": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "message": {"type": "string"},
                "status": {"type": "integer"}
            }
        },
        "ResponseEnvelope": {
            "type": "object",
            "properties": {
                "data": {"type": "object"},
                "error": {"$ref": "#/definitions/APIError"},
                "meta": {"type": "object"}
            }
        }
    }
}`

type swaggerDoc struct{}

// ReadDoc returns the Swagger document.
func (s *swaggerDoc) ReadDoc() string {
	return docTemplate
}

func init() {
	swag.Register(swag.Name, &swaggerDoc{})
}
