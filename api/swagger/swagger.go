package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "Postgraduate Admin API",
        "description": "Administrative dashboard API for graduate student progress tracking",
        "version": "1.0.0"
    },
    "basePath": "/api/v1",
    "schemes": [
        "http"
    ],
    "tags": [
        {"name": "Students", "description": "Student records and checklist progress"},
        {"name": "Tuition", "description": "Per-student tuition ledger"},
        {"name": "Classes", "description": "Cohort classes"},
        {"name": "Templates", "description": "Per-track stage templates"},
        {"name": "Schedule", "description": "Shared academic calendar"},
        {"name": "Library", "description": "System document library"},
        {"name": "Drafts", "description": "AI-assisted document drafting"},
        {"name": "Notifications", "description": "Derived alert feed"},
        {"name": "Dashboard", "description": "Aggregate statistics"},
        {"name": "Exports", "description": "Asynchronous roster and tuition exports"}
    ],
    "paths": {
        "/students": {
            "get": {
                "tags": ["Students"],
                "summary": "List students",
                "parameters": [
                    {"name": "search", "in": "query", "type": "string"},
                    {"name": "degree", "in": "query", "type": "string"},
                    {"name": "classId", "in": "query", "type": "string"},
                    {"name": "batch", "in": "query", "type": "string"},
                    {"name": "stage", "in": "query", "type": "integer"},
                    {"name": "page", "in": "query", "type": "integer"},
                    {"name": "size", "in": "query", "type": "integer"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "post": {
                "tags": ["Students"],
                "summary": "Enroll a student",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CreateStudentRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/students/{id}": {
            "get": {
                "tags": ["Students"],
                "summary": "Get student",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "put": {
                "tags": ["Students"],
                "summary": "Update student profile",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/UpdateStudentRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "delete": {
                "tags": ["Students"],
                "summary": "Delete student",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "204": {"description": "No Content"}
                }
            }
        },
        "/students/{id}/stage": {
            "put": {
                "tags": ["Students"],
                "summary": "Move student to another stage",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/AdvanceStageRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/students/{id}/stages/{stageId}/documents/{docId}/status": {
            "put": {
                "tags": ["Students"],
                "summary": "Set a checklist document status",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"},
                    {"name": "stageId", "in": "path", "required": true, "type": "integer"},
                    {"name": "docId", "in": "path", "required": true, "type": "string"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/UpdateDocumentStatusRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/students/{id}/stages/{stageId}/documents/{docId}/file": {
            "put": {
                "tags": ["Students"],
                "summary": "Attach an uploaded file to a checklist document",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"},
                    {"name": "stageId", "in": "path", "required": true, "type": "integer"},
                    {"name": "docId", "in": "path", "required": true, "type": "string"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/AttachDocumentFileRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/students/{id}/documents/{docId}/template": {
            "get": {
                "tags": ["Library"],
                "summary": "Resolve the form document backing a checklist entry",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"},
                    {"name": "docId", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/students/{id}/tuition": {
            "post": {
                "tags": ["Tuition"],
                "summary": "Add a tuition record",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CreateTuitionRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/students/{id}/tuition/{tuitionId}": {
            "put": {
                "tags": ["Tuition"],
                "summary": "Update a tuition record",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"},
                    {"name": "tuitionId", "in": "path", "required": true, "type": "string"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/UpdateTuitionRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "delete": {
                "tags": ["Tuition"],
                "summary": "Remove a tuition record",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"},
                    {"name": "tuitionId", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/classes": {
            "get": {
                "tags": ["Classes"],
                "summary": "List classes with roster sizes",
                "parameters": [
                    {"name": "search", "in": "query", "type": "string"},
                    {"name": "degree", "in": "query", "type": "string"},
                    {"name": "batch", "in": "query", "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "post": {
                "tags": ["Classes"],
                "summary": "Open a class",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CreateClassRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/classes/{id}": {
            "get": {
                "tags": ["Classes"],
                "summary": "Get class",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "put": {
                "tags": ["Classes"],
                "summary": "Update class",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/UpdateClassRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "delete": {
                "tags": ["Classes"],
                "summary": "Delete class and unassign its members",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "204": {"description": "No Content"}
                }
            }
        },
        "/templates/{degree}": {
            "get": {
                "tags": ["Templates"],
                "summary": "Get the stage template of a degree track",
                "parameters": [
                    {"name": "degree", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "put": {
                "tags": ["Templates"],
                "summary": "Replace the stage template and reconcile students",
                "parameters": [
                    {"name": "degree", "in": "path", "required": true, "type": "string"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/SaveTemplateRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/notifications": {
            "get": {
                "tags": ["Notifications"],
                "summary": "List derived alerts",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/dashboard/stats": {
            "get": {
                "tags": ["Dashboard"],
                "summary": "Aggregate dashboard statistics",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/schedule": {
            "get": {
                "tags": ["Schedule"],
                "summary": "List calendar entries",
                "parameters": [
                    {"name": "from", "in": "query", "type": "string"},
                    {"name": "to", "in": "query", "type": "string"},
                    {"name": "degree", "in": "query", "type": "string"},
                    {"name": "type", "in": "query", "type": "string"},
                    {"name": "batch", "in": "query", "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "post": {
                "tags": ["Schedule"],
                "summary": "Add a calendar entry",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CreateScheduleRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/schedule/{id}": {
            "put": {
                "tags": ["Schedule"],
                "summary": "Update a calendar entry",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/UpdateScheduleRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "delete": {
                "tags": ["Schedule"],
                "summary": "Remove a calendar entry",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "204": {"description": "No Content"}
                }
            }
        },
        "/system-documents": {
            "get": {
                "tags": ["Library"],
                "summary": "List library documents",
                "parameters": [
                    {"name": "search", "in": "query", "type": "string"},
                    {"name": "type", "in": "query", "type": "string"},
                    {"name": "degree", "in": "query", "type": "string"},
                    {"name": "stageId", "in": "query", "type": "integer"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "post": {
                "tags": ["Library"],
                "summary": "Add a library document",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CreateSystemDocumentRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/system-documents/{id}": {
            "get": {
                "tags": ["Library"],
                "summary": "Get library document",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "put": {
                "tags": ["Library"],
                "summary": "Update library document",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/UpdateSystemDocumentRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "delete": {
                "tags": ["Library"],
                "summary": "Remove library document",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "204": {"description": "No Content"}
                }
            }
        },
        "/system-documents/resolve/{degree}/{docId}": {
            "get": {
                "tags": ["Library"],
                "summary": "Resolve the form document for a template checklist entry",
                "parameters": [
                    {"name": "degree", "in": "path", "required": true, "type": "string"},
                    {"name": "docId", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/drafts/document": {
            "post": {
                "tags": ["Drafts"],
                "summary": "Draft an administrative document for a student",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/GenerateDraftRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/drafts/analysis": {
            "post": {
                "tags": ["Drafts"],
                "summary": "Assess a student's progress",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/AnalyzeProgressRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/exports": {
            "post": {
                "tags": ["Exports"],
                "summary": "Queue an export job",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CreateExportRequest"}}
                ],
                "responses": {
                    "202": {"description": "Accepted", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/exports/{id}": {
            "get": {
                "tags": ["Exports"],
                "summary": "Export job status",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/exports/download/{token}": {
            "get": {
                "tags": ["Exports"],
                "summary": "Download a finished export",
                "parameters": [
                    {"name": "token", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "File stream"}
                }
            }
        }
    },
    "definitions": {
        "CreateStudentRequest": {
            "type": "object",
            "properties": {
                "fullName": {"type": "string"},
                "dob": {"type": "string"},
                "email": {"type": "string"},
                "phone": {"type": "string"},
                "degree": {"type": "string", "enum": ["MASTER", "PHD"]},
                "major": {"type": "string"},
                "classId": {"type": "string"},
                "batch": {"type": "string"},
                "enrollmentDate": {"type": "string"},
                "avatarUrl": {"type": "string"},
                "notes": {"type": "string"}
            },
            "required": ["fullName", "dob", "email", "degree", "major", "batch"]
        },
        "UpdateStudentRequest": {
            "type": "object",
            "properties": {
                "fullName": {"type": "string"},
                "dob": {"type": "string"},
                "email": {"type": "string"},
                "phone": {"type": "string"},
                "major": {"type": "string"},
                "classId": {"type": "string"},
                "batch": {"type": "string"},
                "avatarUrl": {"type": "string"},
                "notes": {"type": "string"}
            }
        },
        "AdvanceStageRequest": {
            "type": "object",
            "properties": {
                "stageId": {"type": "integer"}
            },
            "required": ["stageId"]
        },
        "UpdateDocumentStatusRequest": {
            "type": "object",
            "properties": {
                "status": {"type": "string", "enum": ["MISSING", "PENDING", "APPROVED", "REJECTED"]}
            },
            "required": ["status"]
        },
        "CreateTuitionRequest": {
            "type": "object",
            "properties": {
                "title": {"type": "string"},
                "amount": {"type": "integer"},
                "dueDate": {"type": "string"},
                "status": {"type": "string", "enum": ["PAID", "UNPAID", "OVERDUE"]},
                "termIndex": {"type": "integer"}
            },
            "required": ["title", "amount", "dueDate"]
        },
        "SaveTemplateRequest": {
            "type": "object",
            "properties": {
                "stages": {
                    "type": "array",
                    "items": {"$ref": "#/definitions/TemplateStageRequest"}
                }
            },
            "required": ["stages"]
        },
        "TemplateStageRequest": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "name": {"type": "string"},
                "description": {"type": "string"},
                "documents": {
                    "type": "array",
                    "items": {"$ref": "#/definitions/TemplateDocumentRequest"}
                }
            },
            "required": ["id", "name"]
        },
        "TemplateDocumentRequest": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "name": {"type": "string"},
                "required": {"type": "boolean"},
                "templateUrl": {"type": "string"}
            },
            "required": ["id", "name"]
        },
        "CreateExportRequest": {
            "type": "object",
            "properties": {
                "type": {"type": "string", "enum": ["STUDENT_ROSTER", "TUITION_LEDGER", "DRAFT_PDF"]},
                "format": {"type": "string", "enum": ["csv", "pdf"]},
                "degree": {"type": "string"},
                "classId": {"type": "string"},
                "studentId": {"type": "string"},
                "documentName": {"type": "string"},
                "body": {"type": "string"}
            },
            "required": ["type", "format"]
        },
        "AttachDocumentFileRequest": {
            "type": "object",
            "properties": {
                "fileUrl": {"type": "string"}
            },
            "required": ["fileUrl"]
        },
        "UpdateTuitionRequest": {
            "type": "object",
            "properties": {
                "title": {"type": "string"},
                "amount": {"type": "integer"},
                "dueDate": {"type": "string"},
                "status": {"type": "string", "enum": ["PAID", "UNPAID", "OVERDUE"]},
                "paymentDate": {"type": "string"}
            }
        },
        "CreateClassRequest": {
            "type": "object",
            "properties": {
                "name": {"type": "string"},
                "degree": {"type": "string", "enum": ["MASTER", "PHD"]},
                "major": {"type": "string"},
                "batch": {"type": "string"},
                "advisor": {"type": "string"}
            },
            "required": ["name", "degree", "major", "batch"]
        },
        "UpdateClassRequest": {
            "type": "object",
            "properties": {
                "name": {"type": "string"},
                "major": {"type": "string"},
                "batch": {"type": "string"},
                "advisor": {"type": "string"}
            }
        },
        "CreateScheduleRequest": {
            "type": "object",
            "properties": {
                "subject": {"type": "string"},
                "lecturer": {"type": "string"},
                "date": {"type": "string"},
                "time": {"type": "string"},
                "room": {"type": "string"},
                "batch": {"type": "string"},
                "degree": {"type": "string", "enum": ["MASTER", "PHD"]},
                "type": {"type": "string", "enum": ["CLASS", "EXAM", "DEFENSE"]}
            },
            "required": ["subject", "lecturer", "date", "time", "room", "batch", "degree", "type"]
        },
        "UpdateScheduleRequest": {
            "type": "object",
            "properties": {
                "subject": {"type": "string"},
                "lecturer": {"type": "string"},
                "date": {"type": "string"},
                "time": {"type": "string"},
                "room": {"type": "string"},
                "batch": {"type": "string"},
                "type": {"type": "string", "enum": ["CLASS", "EXAM", "DEFENSE"]}
            }
        },
        "CreateSystemDocumentRequest": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "name": {"type": "string"},
                "type": {"type": "string", "enum": ["TEMPLATE", "DECISION", "REGULATION"]},
                "degree": {"type": "string", "enum": ["MASTER", "PHD"]},
                "stageId": {"type": "integer"},
                "documentId": {"type": "string"},
                "description": {"type": "string"},
                "downloadUrl": {"type": "string"}
            },
            "required": ["code", "name", "type", "degree", "downloadUrl"]
        },
        "UpdateSystemDocumentRequest": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "name": {"type": "string"},
                "type": {"type": "string", "enum": ["TEMPLATE", "DECISION", "REGULATION"]},
                "stageId": {"type": "integer"},
                "documentId": {"type": "string"},
                "description": {"type": "string"},
                "downloadUrl": {"type": "string"}
            }
        },
        "GenerateDraftRequest": {
            "type": "object",
            "properties": {
                "documentName": {"type": "string"},
                "studentId": {"type": "string"},
                "context": {"type": "string"}
            },
            "required": ["documentName", "studentId"]
        },
        "AnalyzeProgressRequest": {
            "type": "object",
            "properties": {
                "studentId": {"type": "string"}
            },
            "required": ["studentId"]
        },
        "Pagination": {
            "type": "object",
            "properties": {
                "page": {"type": "integer"},
                "page_size": {"type": "integer"},
                "total_count": {"type": "integer"}
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
                "pagination": {"$ref": "#/definitions/Pagination"},
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
