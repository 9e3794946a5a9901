package rest

import (
	"net/http"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/ghodss/yaml"
	"github.com/go-chi/chi/v5"
)

// NewOpenAPI3 instantiates the OpenAPI specification for this service.
func NewOpenAPI3() openapi3.T {
	swagger := openapi3.T{
		OpenAPI: "3.0.0",
		Info: &openapi3.Info{
			Title:       "TaskTrack API",
			Description: "REST API for tracking, categorizing and searching tasks",
			Version:     "1.0.0",
			Contact: &openapi3.Contact{
				URL: "https://github.com/avelinos/tasktrack-api",
			},
		},
		Servers: openapi3.Servers{
			&openapi3.Server{
				Description: "Local development",
				URL:         "http://0.0.0.0:9234",
			},
		},
	}

	swagger.Components = &openapi3.Components{
		Schemas: openapi3.Schemas{
			"Task": openapi3.NewSchemaRef("",
				openapi3.NewObjectSchema().
					WithProperty("id", openapi3.NewInt64Schema()).
					WithProperty("title", openapi3.NewStringSchema().WithMinLength(1).WithMaxLength(200)).
					WithProperty("description", openapi3.NewStringSchema().WithMaxLength(1000).WithNullable()).
					WithProperty("isCompleted", openapi3.NewBoolSchema()).
					WithProperty("priority", openapi3.NewIntegerSchema().WithMin(1).WithMax(3)).
					WithProperty("priorityText", openapi3.NewStringSchema()).
					WithProperty("categoryId", openapi3.NewInt64Schema().WithNullable()).
					WithProperty("categoryName", openapi3.NewStringSchema()).
					WithProperty("categoryColor", openapi3.NewStringSchema().WithNullable()).
					WithProperty("dueDate", openapi3.NewDateTimeSchema().WithNullable()).
					WithProperty("estimatedHours", openapi3.NewFloat64Schema().WithNullable()).
					WithProperty("notificationsEnabled", openapi3.NewBoolSchema()).
					WithProperty("createdAt", openapi3.NewDateTimeSchema()).
					WithProperty("updatedAt", openapi3.NewDateTimeSchema()).
					WithProperty("isOverdue", openapi3.NewBoolSchema()).
					WithProperty("isDueSoon", openapi3.NewBoolSchema()).
					WithProperty("dueStatus", openapi3.NewStringSchema().
						WithEnum("none", "overdue", "due_soon", "normal"))),
			"Category": openapi3.NewSchemaRef("",
				openapi3.NewObjectSchema().
					WithProperty("id", openapi3.NewInt64Schema()).
					WithProperty("name", openapi3.NewStringSchema().WithMinLength(1).WithMaxLength(100)).
					WithProperty("description", openapi3.NewStringSchema().WithMaxLength(500).WithNullable()).
					WithProperty("color", openapi3.NewStringSchema().WithPattern(`^#[0-9A-F]{6}$`).WithNullable()).
					WithProperty("isActive", openapi3.NewBoolSchema()).
					WithProperty("createdAt", openapi3.NewDateTimeSchema()).
					WithProperty("activeTaskCount", openapi3.NewInt64Schema()).
					WithProperty("completedTaskCount", openapi3.NewInt64Schema()).
					WithProperty("completionPercentage", openapi3.NewFloat64Schema())),
			"SearchTasksResponse": openapi3.NewSchemaRef("",
				openapi3.NewObjectSchema().
					WithPropertyRef("tasks", &openapi3.SchemaRef{
						Value: openapi3.NewArraySchema().WithItems(&openapi3.Schema{}),
					}).
					WithProperty("totalCount", openapi3.NewInt64Schema()).
					WithProperty("page", openapi3.NewIntegerSchema()).
					WithProperty("pageSize", openapi3.NewIntegerSchema()).
					WithProperty("totalPages", openapi3.NewIntegerSchema()).
					WithProperty("hasNextPage", openapi3.NewBoolSchema()).
					WithProperty("hasPreviousPage", openapi3.NewBoolSchema())),
			"ErrorResponse": openapi3.NewSchemaRef("",
				openapi3.NewObjectSchema().
					WithProperty("error", openapi3.NewStringSchema()).
					WithProperty("details", openapi3.NewObjectSchema().
						WithAdditionalProperties(openapi3.NewStringSchema()))),
		},
	}

	taskRef := &openapi3.SchemaRef{Ref: "#/components/schemas/Task"}
	categoryRef := &openapi3.SchemaRef{Ref: "#/components/schemas/Category"}
	errorRef := &openapi3.SchemaRef{Ref: "#/components/schemas/ErrorResponse"}
	searchRef := &openapi3.SchemaRef{Ref: "#/components/schemas/SearchTasksResponse"}

	idParam := &openapi3.ParameterRef{
		Value: openapi3.NewPathParameter("id").
			WithRequired(true).
			WithSchema(openapi3.NewInt64Schema()),
	}

	taskOK := &openapi3.ResponseRef{
		Value: openapi3.NewResponse().
			WithDescription("Enriched task record").
			WithJSONSchemaRef(taskRef),
	}
	notFound := &openapi3.ResponseRef{
		Value: openapi3.NewResponse().
			WithDescription("Record not found").
			WithJSONSchemaRef(errorRef),
	}
	badRequest := &openapi3.ResponseRef{
		Value: openapi3.NewResponse().
			WithDescription("Validation failed").
			WithJSONSchemaRef(errorRef),
	}

	swagger.Paths = openapi3.Paths{
		"/tasks": &openapi3.PathItem{
			Get: &openapi3.Operation{
				OperationID: "ListTasks",
				Parameters: openapi3.Parameters{
					&openapi3.ParameterRef{
						Value: openapi3.NewQueryParameter("includeCompleted").
							WithSchema(openapi3.NewBoolSchema()),
					},
				},
				Responses: openapi3.Responses{
					"200": &openapi3.ResponseRef{
						Value: openapi3.NewResponse().
							WithDescription("Tasks ordered by urgency and recency").
							WithJSONSchemaRef(taskRef),
					},
				},
			},
			Post: &openapi3.Operation{
				OperationID: "CreateTask",
				RequestBody: &openapi3.RequestBodyRef{
					Value: openapi3.NewRequestBody().WithJSONSchemaRef(taskRef),
				},
				Responses: openapi3.Responses{
					"201": taskOK,
					"400": badRequest,
				},
			},
		},
		"/tasks/{id}": &openapi3.PathItem{
			Get: &openapi3.Operation{
				OperationID: "ReadTask",
				Parameters:  openapi3.Parameters{idParam},
				Responses: openapi3.Responses{
					"200": taskOK,
					"404": notFound,
				},
			},
			Put: &openapi3.Operation{
				OperationID: "UpdateTask",
				Parameters:  openapi3.Parameters{idParam},
				RequestBody: &openapi3.RequestBodyRef{
					Value: openapi3.NewRequestBody().WithJSONSchemaRef(taskRef),
				},
				Responses: openapi3.Responses{
					"200": taskOK,
					"400": badRequest,
					"404": notFound,
				},
			},
			Delete: &openapi3.Operation{
				OperationID: "DeleteTask",
				Parameters:  openapi3.Parameters{idParam},
				Responses: openapi3.Responses{
					"204": &openapi3.ResponseRef{
						Value: openapi3.NewResponse().WithDescription("Task soft-deleted"),
					},
					"404": notFound,
				},
			},
		},
		"/tasks/{id}/toggle": &openapi3.PathItem{
			Patch: &openapi3.Operation{
				OperationID: "ToggleTaskCompletion",
				Parameters:  openapi3.Parameters{idParam},
				Responses: openapi3.Responses{
					"200": taskOK,
					"404": notFound,
				},
			},
		},
		"/tasks/{id}/restore": &openapi3.PathItem{
			Post: &openapi3.Operation{
				OperationID: "RestoreTask",
				Parameters:  openapi3.Parameters{idParam},
				Responses: openapi3.Responses{
					"200": taskOK,
					"404": notFound,
				},
			},
		},
		"/tasks/search": &openapi3.PathItem{
			Post: &openapi3.Operation{
				OperationID: "SearchTasks",
				Responses: openapi3.Responses{
					"200": &openapi3.ResponseRef{
						Value: openapi3.NewResponse().
							WithDescription("One page of matching tasks").
							WithJSONSchemaRef(searchRef),
					},
				},
			},
		},
		"/tasks/statistics": &openapi3.PathItem{
			Get: &openapi3.Operation{
				OperationID: "TaskStatistics",
				Responses: openapi3.Responses{
					"200": &openapi3.ResponseRef{
						Value: openapi3.NewResponse().
							WithDescription("Aggregate rows, Total first"),
					},
				},
			},
		},
		"/categories": &openapi3.PathItem{
			Get: &openapi3.Operation{
				OperationID: "ListCategories",
				Responses: openapi3.Responses{
					"200": &openapi3.ResponseRef{
						Value: openapi3.NewResponse().
							WithDescription("Active categories ordered by name").
							WithJSONSchemaRef(categoryRef),
					},
				},
			},
			Post: &openapi3.Operation{
				OperationID: "CreateCategory",
				RequestBody: &openapi3.RequestBodyRef{
					Value: openapi3.NewRequestBody().WithJSONSchemaRef(categoryRef),
				},
				Responses: openapi3.Responses{
					"201": &openapi3.ResponseRef{
						Value: openapi3.NewResponse().
							WithDescription("Category created").
							WithJSONSchemaRef(categoryRef),
					},
					"400": badRequest,
				},
			},
		},
		"/categories/{id}": &openapi3.PathItem{
			Get: &openapi3.Operation{
				OperationID: "ReadCategory",
				Parameters:  openapi3.Parameters{idParam},
				Responses: openapi3.Responses{
					"200": &openapi3.ResponseRef{
						Value: openapi3.NewResponse().
							WithDescription("Enriched category record").
							WithJSONSchemaRef(categoryRef),
					},
					"404": notFound,
				},
			},
		},
	}

	return swagger
}

// RegisterOpenAPI serves the OpenAPI document as JSON and YAML.
func RegisterOpenAPI(r chi.Router) {
	swagger := NewOpenAPI3()

	r.Get("/openapi3.json", func(w http.ResponseWriter, _ *http.Request) {
		renderResponse(w, &swagger, http.StatusOK)
	})

	r.Get("/openapi3.yaml", func(w http.ResponseWriter, _ *http.Request) {
		data, err := yaml.Marshal(&swagger)
		if err != nil {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/x-yaml")
		_, _ = w.Write(data)
	})
}
