// Package docs registra en swag el documento OpenAPI que sirve /swagger.
// Se mantiene a mano junto con las anotaciones godoc de los handlers.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/health": {
            "get": {
                "produces": ["text/plain"],
                "tags": ["health"],
                "summary": "Health check",
                "responses": {"200": {"description": "ok", "schema": {"type": "string"}}}
            }
        },
        "/pets": {
            "get": {
                "description": "Devuelve todas las mascotas del registro, la más reciente primero.",
                "produces": ["application/json"],
                "tags": ["pets"],
                "summary": "Listar registro",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/pets.listPetsResponse"}},
                    "500": {"description": "internal error", "schema": {"type": "string"}}
                }
            },
            "post": {
                "description": "Valida el formulario de alta y agrega la mascota al frente del registro. Los opcionales vacíos toman valores por defecto.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["pets"],
                "summary": "Registrar mascota",
                "parameters": [
                    {"description": "Formulario de alta", "name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/intake.Draft"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/pets.Pet"}},
                    "400": {"description": "invalid json", "schema": {"type": "string"}},
                    "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/intake.validationErrorResponse"}},
                    "500": {"description": "internal error", "schema": {"type": "string"}}
                }
            }
        },
        "/pets/dashboard": {
            "get": {
                "description": "Lista las mascotas filtradas por búsqueda (nombre o raza) y categoría, más los contadores calculados sobre todo el registro.",
                "produces": ["application/json"],
                "tags": ["views"],
                "summary": "Dashboard del dueño",
                "parameters": [
                    {"type": "string", "description": "Texto libre (nombre o raza)", "name": "q", "in": "query"},
                    {"type": "string", "description": "Todos, Perros, Gatos, Sano o Senior", "name": "filter", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/views.dashboardResponse"}},
                    "500": {"description": "internal error", "schema": {"type": "string"}}
                }
            }
        },
        "/pets/intake-options": {
            "get": {
                "description": "Códigos y etiquetas de cada select, en orden, y el vocabulario de condiciones conocidas.",
                "produces": ["application/json"],
                "tags": ["pets"],
                "summary": "Opciones del formulario de alta",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/intake.FormOptions"}}
                }
            }
        },
        "/staff/filters": {
            "get": {
                "description": "Valores aceptados por species y sex en /staff/pets; \"all\" no filtra.",
                "produces": ["application/json"],
                "tags": ["views"],
                "summary": "Filtros del directorio del staff",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/views.staffFiltersResponse"}}
                }
            }
        },
        "/staff/pets": {
            "get": {
                "description": "Busca en todo el registro por correo del dueño, nombre, raza, especie, sexo, fecha de nacimiento o microchip. Especie y sexo filtran por igualdad.",
                "produces": ["application/json"],
                "tags": ["views"],
                "summary": "Directorio del staff",
                "parameters": [
                    {"type": "string", "description": "Texto libre", "name": "q", "in": "query"},
                    {"type": "string", "description": "all, perro o gato", "name": "species", "in": "query"},
                    {"type": "string", "description": "all, macho o hembra", "name": "sex", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/views.staffSearchResponse"}},
                    "500": {"description": "internal error", "schema": {"type": "string"}}
                }
            }
        },
        "/sessions": {
            "post": {
                "description": "Crea una sesión de UI nueva, en la pantalla landing.",
                "produces": ["application/json"],
                "tags": ["sessions"],
                "summary": "Abrir sesión",
                "responses": {"201": {"description": "Created", "schema": {"$ref": "#/definitions/navigation.sessionResponse"}}}
            }
        },
        "/sessions/{sessionID}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["sessions"],
                "summary": "Ver sesión",
                "parameters": [{"type": "string", "description": "Session ID", "name": "sessionID", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/navigation.sessionResponse"}},
                    "404": {"description": "not found", "schema": {"type": "string"}}
                }
            },
            "delete": {
                "description": "Descarta la sesión y cancela su redirect pendiente.",
                "tags": ["sessions"],
                "summary": "Cerrar sesión",
                "parameters": [{"type": "string", "description": "Session ID", "name": "sessionID", "in": "path", "required": true}],
                "responses": {
                    "204": {"description": "No Content"},
                    "404": {"description": "not found", "schema": {"type": "string"}}
                }
            }
        },
        "/sessions/{sessionID}/navigate": {
            "post": {
                "description": "Cambia de pantalla. Las de detalle no se alcanzan así: usar /select.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["sessions"],
                "summary": "Navegar",
                "parameters": [
                    {"type": "string", "description": "Session ID", "name": "sessionID", "in": "path", "required": true},
                    {"description": "Pantalla destino", "name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/navigation.navigateRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/navigation.transitionResponse"}},
                    "400": {"description": "bad request", "schema": {"type": "string"}},
                    "404": {"description": "not found", "schema": {"type": "string"}}
                }
            }
        },
        "/sessions/{sessionID}/select": {
            "post": {
                "description": "Elige una mascota de los últimos resultados mostrados y abre su detalle en un solo paso.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["sessions"],
                "summary": "Seleccionar mascota",
                "parameters": [
                    {"type": "string", "description": "Session ID", "name": "sessionID", "in": "path", "required": true},
                    {"description": "Mascota y pantalla de detalle", "name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/navigation.selectRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/navigation.transitionResponse"}},
                    "400": {"description": "bad request", "schema": {"type": "string"}},
                    "404": {"description": "not found", "schema": {"type": "string"}}
                }
            }
        },
        "/sessions/{sessionID}/dashboard": {
            "get": {
                "description": "Igual que /pets/dashboard, pero la sesión recuerda las mascotas mostradas.",
                "produces": ["application/json"],
                "tags": ["sessions"],
                "summary": "Dashboard del dueño (sesión)",
                "parameters": [
                    {"type": "string", "description": "Session ID", "name": "sessionID", "in": "path", "required": true},
                    {"type": "string", "description": "Texto libre (nombre o raza)", "name": "q", "in": "query"},
                    {"type": "string", "description": "Todos, Perros, Gatos, Sano o Senior", "name": "filter", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/views.dashboardResponse"}},
                    "404": {"description": "not found", "schema": {"type": "string"}}
                }
            }
        },
        "/sessions/{sessionID}/staff/pets": {
            "get": {
                "description": "Igual que /staff/pets, pero la sesión recuerda las mascotas mostradas.",
                "produces": ["application/json"],
                "tags": ["sessions"],
                "summary": "Directorio del staff (sesión)",
                "parameters": [
                    {"type": "string", "description": "Session ID", "name": "sessionID", "in": "path", "required": true},
                    {"type": "string", "description": "Texto libre", "name": "q", "in": "query"},
                    {"type": "string", "description": "all, perro o gato", "name": "species", "in": "query"},
                    {"type": "string", "description": "all, macho o hembra", "name": "sex", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/views.staffSearchResponse"}},
                    "404": {"description": "not found", "schema": {"type": "string"}}
                }
            }
        },
        "/sessions/{sessionID}/draft": {
            "get": {
                "produces": ["application/json"],
                "tags": ["draft"],
                "summary": "Ver borrador",
                "parameters": [{"type": "string", "description": "Session ID", "name": "sessionID", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/navigation.draftResponse"}},
                    "404": {"description": "not found", "schema": {"type": "string"}},
                    "409": {"description": "not on add-pet", "schema": {"type": "string"}}
                }
            },
            "patch": {
                "description": "Cambia uno o más campos (string o bool según el campo). Cada campo editado pierde su error.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["draft"],
                "summary": "Editar borrador",
                "parameters": [
                    {"type": "string", "description": "Session ID", "name": "sessionID", "in": "path", "required": true},
                    {"description": "Campos a cambiar, p.ej. {\"petName\": \"Max\"}", "name": "payload", "in": "body", "required": true, "schema": {"type": "object"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/navigation.draftResponse"}},
                    "400": {"description": "bad request", "schema": {"type": "string"}},
                    "404": {"description": "not found", "schema": {"type": "string"}},
                    "409": {"description": "not on add-pet", "schema": {"type": "string"}}
                }
            }
        },
        "/sessions/{sessionID}/draft/conditions/toggle": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["draft"],
                "summary": "Marcar/desmarcar condición",
                "parameters": [
                    {"type": "string", "description": "Session ID", "name": "sessionID", "in": "path", "required": true},
                    {"description": "Condición", "name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/navigation.toggleConditionRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/navigation.draftResponse"}},
                    "400": {"description": "bad request", "schema": {"type": "string"}},
                    "409": {"description": "not on add-pet", "schema": {"type": "string"}}
                }
            }
        },
        "/sessions/{sessionID}/draft/vaccines": {
            "post": {
                "description": "Agrega una vacuna vacía, en edición y con estado Vigente.",
                "produces": ["application/json"],
                "tags": ["draft"],
                "summary": "Agregar vacuna",
                "parameters": [{"type": "string", "description": "Session ID", "name": "sessionID", "in": "path", "required": true}],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/navigation.addVaccineResponse"}},
                    "409": {"description": "not on add-pet", "schema": {"type": "string"}}
                }
            }
        },
        "/sessions/{sessionID}/draft/vaccines/{vaccineID}": {
            "patch": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["draft"],
                "summary": "Editar vacuna",
                "parameters": [
                    {"type": "string", "description": "Session ID", "name": "sessionID", "in": "path", "required": true},
                    {"type": "string", "description": "Vaccine ID", "name": "vaccineID", "in": "path", "required": true},
                    {"description": "Campos a cambiar", "name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/navigation.patchVaccineRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/navigation.draftResponse"}},
                    "400": {"description": "bad request", "schema": {"type": "string"}},
                    "404": {"description": "not found", "schema": {"type": "string"}},
                    "409": {"description": "not on add-pet", "schema": {"type": "string"}}
                }
            },
            "delete": {
                "produces": ["application/json"],
                "tags": ["draft"],
                "summary": "Quitar vacuna",
                "parameters": [
                    {"type": "string", "description": "Session ID", "name": "sessionID", "in": "path", "required": true},
                    {"type": "string", "description": "Vaccine ID", "name": "vaccineID", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/navigation.draftResponse"}},
                    "404": {"description": "not found", "schema": {"type": "string"}},
                    "409": {"description": "not on add-pet", "schema": {"type": "string"}}
                }
            }
        },
        "/sessions/{sessionID}/draft/submit": {
            "post": {
                "description": "Valida el borrador y registra la mascota. Si pasa, la sesión vuelve sola al dashboard tras una demora corta, salvo que antes se navegue a otra pantalla.",
                "produces": ["application/json"],
                "tags": ["draft"],
                "summary": "Enviar alta",
                "parameters": [{"type": "string", "description": "Session ID", "name": "sessionID", "in": "path", "required": true}],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/navigation.submitResponse"}},
                    "404": {"description": "not found", "schema": {"type": "string"}},
                    "409": {"description": "not on add-pet or already submitted", "schema": {"type": "string"}},
                    "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/intake.validationErrorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "intake.Draft": {
            "type": "object",
            "properties": {
                "petName": {"type": "string"},
                "species": {"type": "string", "example": "perro"},
                "breed": {"type": "string"},
                "sex": {"type": "string", "example": "macho"},
                "birthDate": {"type": "string", "example": "15/06/2015"},
                "microchip": {"type": "string"},
                "location": {"type": "string"},
                "ownerEmail": {"type": "string"},
                "isServiceAnimal": {"type": "boolean"},
                "isSterilized": {"type": "boolean"},
                "healthStatus": {"type": "string", "example": "saludable"},
                "allergies": {"type": "string"},
                "medications": {"type": "string"},
                "conditions": {"type": "array", "items": {"type": "string"}},
                "foodMain": {"type": "string"},
                "dietType": {"type": "string", "example": "pienso"},
                "dailyAmount": {"type": "string"},
                "activityLevel": {"type": "string", "example": "medio"},
                "livesWithOtherPets": {"type": "boolean"},
                "vaccines": {"type": "array", "items": {"$ref": "#/definitions/intake.VaccineEntry"}}
            }
        },
        "intake.FormOptions": {
            "type": "object",
            "properties": {
                "species": {"type": "array", "items": {"$ref": "#/definitions/intake.Option"}},
                "sexes": {"type": "array", "items": {"$ref": "#/definitions/intake.Option"}},
                "health_statuses": {"type": "array", "items": {"$ref": "#/definitions/intake.Option"}},
                "diet_types": {"type": "array", "items": {"$ref": "#/definitions/intake.Option"}},
                "activity_levels": {"type": "array", "items": {"$ref": "#/definitions/intake.Option"}},
                "conditions": {"type": "array", "items": {"type": "string"}}
            }
        },
        "intake.Option": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "label": {"type": "string"}
            }
        },
        "intake.VaccineEntry": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "name": {"type": "string"},
                "date": {"type": "string"},
                "vetId": {"type": "string"},
                "status": {"type": "string", "enum": ["Vigente", "Vencida"]},
                "isEditing": {"type": "boolean"}
            }
        },
        "intake.validationErrorResponse": {
            "type": "object",
            "properties": {
                "errors": {"type": "object", "additionalProperties": {"type": "string"}}
            }
        },
        "navigation.addVaccineResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "draft": {"$ref": "#/definitions/navigation.draftResponse"}
            }
        },
        "navigation.draftResponse": {
            "type": "object",
            "properties": {
                "draft": {"$ref": "#/definitions/intake.Draft"},
                "errors": {"type": "object", "additionalProperties": {"type": "string"}}
            }
        },
        "navigation.navigateRequest": {
            "type": "object",
            "properties": {
                "screen": {"type": "string", "enum": ["landing", "dashboard", "add-pet", "staff-search"]}
            }
        },
        "navigation.patchVaccineRequest": {
            "type": "object",
            "properties": {
                "name": {"type": "string"},
                "date": {"type": "string"},
                "vetId": {"type": "string"},
                "status": {"type": "string", "enum": ["Vigente", "Vencida"]},
                "toggleEditing": {"type": "boolean"}
            }
        },
        "navigation.selectRequest": {
            "type": "object",
            "properties": {
                "pet_id": {"type": "string"},
                "target": {"type": "string", "enum": ["owner-pet-detail", "staff-pet-detail"]}
            }
        },
        "navigation.sessionResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "view": {"$ref": "#/definitions/navigation.viewResponse"},
                "has_draft": {"type": "boolean"},
                "redirect_pending": {"type": "boolean"}
            }
        },
        "navigation.submitResponse": {
            "type": "object",
            "properties": {
                "pet": {"$ref": "#/definitions/pets.Pet"},
                "view": {"$ref": "#/definitions/navigation.viewResponse"},
                "redirect_pending": {"type": "boolean"}
            }
        },
        "navigation.toggleConditionRequest": {
            "type": "object",
            "properties": {
                "condition": {"type": "string"}
            }
        },
        "navigation.transitionResponse": {
            "type": "object",
            "properties": {
                "from": {"$ref": "#/definitions/navigation.viewResponse"},
                "to": {"$ref": "#/definitions/navigation.viewResponse"},
                "scroll_to_top": {"type": "boolean"}
            }
        },
        "navigation.viewResponse": {
            "type": "object",
            "properties": {
                "screen": {"type": "string", "enum": ["landing", "dashboard", "add-pet", "owner-pet-detail", "staff-pet-detail", "staff-search"]},
                "pet": {"$ref": "#/definitions/pets.Pet"},
                "alerts": {"$ref": "#/definitions/navigation.medicalAlertsResponse"}
            }
        },
        "navigation.medicalAlertsResponse": {
            "type": "object",
            "properties": {
                "has_medical_alerts": {"type": "boolean"},
                "expired_vaccines": {"type": "array", "items": {"$ref": "#/definitions/pets.Vaccine"}}
            }
        },
        "pets.Pet": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "name": {"type": "string"},
                "species": {"type": "string"},
                "breed": {"type": "string"},
                "sex": {"type": "string"},
                "birth_date": {"type": "string"},
                "age": {"type": "string"},
                "microchip": {"type": "string"},
                "location": {"type": "string"},
                "image_url": {"type": "string"},
                "is_service_animal": {"type": "boolean"},
                "is_sterilized": {"type": "boolean"},
                "coexists_with_other_pets": {"type": "boolean"},
                "health_status": {"type": "string", "enum": ["Saludable", "Cuidado Especial"]},
                "health_detail": {"type": "string"},
                "allergies": {"type": "string"},
                "medications": {"type": "string"},
                "diseases": {"type": "array", "items": {"type": "string"}},
                "vaccines": {"type": "array", "items": {"$ref": "#/definitions/pets.Vaccine"}},
                "food_main": {"type": "string"},
                "diet_type": {"type": "string"},
                "daily_amount": {"type": "string"},
                "activity_level": {"type": "string"},
                "owner_email": {"type": "string"}
            }
        },
        "pets.Vaccine": {
            "type": "object",
            "properties": {
                "name": {"type": "string"},
                "date": {"type": "string"},
                "vet_id": {"type": "string"},
                "status": {"type": "string", "enum": ["Vigente", "Vencida"]}
            }
        },
        "pets.listPetsResponse": {
            "type": "object",
            "properties": {
                "pets": {"type": "array", "items": {"$ref": "#/definitions/pets.Pet"}},
                "count": {"type": "integer"}
            }
        },
        "views.dashboardResponse": {
            "type": "object",
            "properties": {
                "filter": {"type": "string", "enum": ["Todos", "Perros", "Gatos", "Sano", "Senior"]},
                "stats": {"$ref": "#/definitions/views.Stats"},
                "pets": {"type": "array", "items": {"$ref": "#/definitions/pets.Pet"}}
            }
        },
        "views.Stats": {
            "type": "object",
            "properties": {
                "total": {"type": "integer"},
                "healthy": {"type": "integer"},
                "expired_vaccines": {"type": "integer"},
                "senior": {"type": "integer"}
            }
        },
        "views.staffFiltersResponse": {
            "type": "object",
            "properties": {
                "species": {"type": "array", "items": {"type": "string"}},
                "sexes": {"type": "array", "items": {"type": "string"}}
            }
        },
        "views.staffSearchResponse": {
            "type": "object",
            "properties": {
                "count": {"type": "integer"},
                "label": {"type": "string"},
                "pets": {"type": "array", "items": {"$ref": "#/definitions/pets.Pet"}}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Pet Hotel Registry API",
	Description:      "Registro de mascotas huéspedes del hotel: alta, dashboard del dueño, directorio del staff y sesiones de UI.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
