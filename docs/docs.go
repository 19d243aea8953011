// Package docs регистрирует swagger-описание API в формате swag.
// Обновляется командой swag init -g cmd/main.go -o docs.
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
        "/dashboard/stats": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "dashboard"
                ],
                "summary": "Сводка по лиге",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/models.DashboardStats"
                        }
                    }
                }
            }
        },
        "/fixtures": {
            "get": {
                "description": "Сортировка по дате и времени, матчи без даты в конце.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "fixtures"
                ],
                "summary": "Расписание матчей с соперниками",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Фильтр по игре",
                        "name": "game_id",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "description": "scheduled, in_progress, completed, cancelled",
                        "name": "status",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "description": "Раунд турнира",
                        "name": "round",
                        "in": "query"
                    },
                    {
                        "type": "integer",
                        "description": "Домашняя или гостевая франшиза",
                        "name": "franchise_id",
                        "in": "query"
                    },
                    {
                        "type": "integer",
                        "description": "Сколько записей пропустить",
                        "name": "skip",
                        "in": "query"
                    },
                    {
                        "type": "integer",
                        "description": "Максимум записей",
                        "name": "limit",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/models.Fixture"
                            }
                        }
                    }
                }
            }
        },
        "/franchises": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "franchises"
                ],
                "summary": "Список франшиз",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Сколько записей пропустить",
                        "name": "skip",
                        "in": "query"
                    },
                    {
                        "type": "integer",
                        "description": "Максимум записей",
                        "name": "limit",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/models.Franchise"
                            }
                        }
                    }
                }
            },
            "post": {
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "franchises"
                ],
                "summary": "Создать франшизу",
                "parameters": [
                    {
                        "description": "Данные франшизы",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/services.CreateFranchiseInput"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/models.Franchise"
                        }
                    },
                    "409": {
                        "description": "Conflict",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            }
        },
        "/franchises/{franchiseID}": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "franchises"
                ],
                "summary": "Получить франшизу",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Franchise ID",
                        "name": "franchiseID",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/models.Franchise"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            },
            "put": {
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "franchises"
                ],
                "summary": "Частично обновить франшизу",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Franchise ID",
                        "name": "franchiseID",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Изменяемые поля",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/services.UpdateFranchiseInput"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/models.Franchise"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            },
            "delete": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "franchises"
                ],
                "summary": "Удалить франшизу",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Franchise ID",
                        "name": "franchiseID",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    },
                    "409": {
                        "description": "Conflict",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            }
        },
        "/franchises/{franchiseID}/logo": {
            "post": {
                "consumes": [
                    "multipart/form-data"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "franchises"
                ],
                "summary": "Загрузить логотип франшизы",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Franchise ID",
                        "name": "franchiseID",
                        "in": "path",
                        "required": true
                    },
                    {
                        "type": "file",
                        "description": "Логотип",
                        "name": "file",
                        "in": "formData",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/models.Franchise"
                        }
                    }
                }
            }
        },
        "/gallery": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "gallery"
                ],
                "summary": "Галерея",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Фильтр по матчу",
                        "name": "match_id",
                        "in": "query"
                    },
                    {
                        "type": "integer",
                        "description": "Сколько записей пропустить",
                        "name": "skip",
                        "in": "query"
                    },
                    {
                        "type": "integer",
                        "description": "Максимум записей",
                        "name": "limit",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/models.GalleryItem"
                            }
                        }
                    }
                }
            },
            "post": {
                "consumes": [
                    "multipart/form-data"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "gallery"
                ],
                "summary": "Загрузить фото в галерею",
                "parameters": [
                    {
                        "type": "file",
                        "description": "Изображение",
                        "name": "file",
                        "in": "formData",
                        "required": true
                    },
                    {
                        "type": "string",
                        "description": "Заголовок",
                        "name": "title",
                        "in": "formData"
                    },
                    {
                        "type": "string",
                        "description": "Описание",
                        "name": "description",
                        "in": "formData"
                    },
                    {
                        "type": "integer",
                        "description": "Матч",
                        "name": "match_id",
                        "in": "formData"
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/models.GalleryItem"
                        }
                    },
                    "422": {
                        "description": "Unprocessable Entity",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            }
        },
        "/gallery/{galleryID}": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "gallery"
                ],
                "summary": "Получить фото галереи",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Gallery item ID",
                        "name": "galleryID",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/models.GalleryItem"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            },
            "delete": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "gallery"
                ],
                "summary": "Удалить фото галереи",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Gallery item ID",
                        "name": "galleryID",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            }
        },
        "/games": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "games"
                ],
                "summary": "Список игр",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Сколько записей пропустить",
                        "name": "skip",
                        "in": "query"
                    },
                    {
                        "type": "integer",
                        "description": "Максимум записей (0-500)",
                        "name": "limit",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/models.Game"
                            }
                        }
                    }
                }
            },
            "post": {
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "games"
                ],
                "summary": "Создать игру",
                "parameters": [
                    {
                        "description": "Данные игры",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/services.CreateGameInput"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/models.Game"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    },
                    "409": {
                        "description": "Conflict",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    },
                    "422": {
                        "description": "Unprocessable Entity",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            }
        },
        "/games/{gameID}": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "games"
                ],
                "summary": "Получить игру",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Game ID",
                        "name": "gameID",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/models.Game"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            },
            "put": {
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "games"
                ],
                "summary": "Частично обновить игру",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Game ID",
                        "name": "gameID",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Изменяемые поля",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/services.UpdateGameInput"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/models.Game"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    },
                    "409": {
                        "description": "Conflict",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            },
            "delete": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "games"
                ],
                "summary": "Удалить игру",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Game ID",
                        "name": "gameID",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    },
                    "409": {
                        "description": "Conflict",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            }
        },
        "/games/{gameID}/image": {
            "post": {
                "consumes": [
                    "multipart/form-data"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "games"
                ],
                "summary": "Загрузить изображение игры",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Game ID",
                        "name": "gameID",
                        "in": "path",
                        "required": true
                    },
                    {
                        "type": "file",
                        "description": "Изображение",
                        "name": "file",
                        "in": "formData",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/models.Game"
                        }
                    },
                    "422": {
                        "description": "Unprocessable Entity",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            }
        },
        "/leaderboard": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "leaderboard"
                ],
                "summary": "Общая таблица лидеров",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Только матчи этой игры",
                        "name": "game_id",
                        "in": "query"
                    },
                    {
                        "type": "integer",
                        "description": "Размер каждой таблицы (по умолчанию 10)",
                        "name": "limit",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/leaderboard.Combined"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            }
        },
        "/leaderboard/franchises": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "leaderboard"
                ],
                "summary": "Лучшие франшизы",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Только матчи этой игры",
                        "name": "game_id",
                        "in": "query"
                    },
                    {
                        "type": "integer",
                        "description": "Размер таблицы (по умолчанию 10)",
                        "name": "limit",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/leaderboard.FranchiseEntry"
                            }
                        }
                    }
                }
            }
        },
        "/leaderboard/players": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "leaderboard"
                ],
                "summary": "Лучшие игроки",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Только матчи этой игры",
                        "name": "game_id",
                        "in": "query"
                    },
                    {
                        "type": "integer",
                        "description": "Размер таблицы (по умолчанию 10)",
                        "name": "limit",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/leaderboard.PlayerEntry"
                            }
                        }
                    }
                }
            }
        },
        "/leaderboard/teams": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "leaderboard"
                ],
                "summary": "Лучшие команды",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Только команды этой игры",
                        "name": "game_id",
                        "in": "query"
                    },
                    {
                        "type": "integer",
                        "description": "Размер таблицы (по умолчанию 10)",
                        "name": "limit",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/leaderboard.TeamEntry"
                            }
                        }
                    }
                }
            }
        },
        "/match-players": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "match-players"
                ],
                "summary": "Список результатов",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Фильтр по матчу",
                        "name": "match_id",
                        "in": "query"
                    },
                    {
                        "type": "integer",
                        "description": "Сколько записей пропустить",
                        "name": "skip",
                        "in": "query"
                    },
                    {
                        "type": "integer",
                        "description": "Максимум записей",
                        "name": "limit",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/models.MatchParticipant"
                            }
                        }
                    }
                }
            },
            "post": {
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "match-players"
                ],
                "summary": "Добавить игрока в матч",
                "parameters": [
                    {
                        "description": "Результат игрока",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/services.CreateParticipantInput"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/models.MatchParticipant"
                        }
                    },
                    "422": {
                        "description": "Unprocessable Entity",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            }
        },
        "/match-players/{participantID}": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "match-players"
                ],
                "summary": "Получить результат игрока",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Match player ID",
                        "name": "participantID",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/models.MatchParticipant"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            },
            "put": {
                "description": "Очки игрока пересчитываются в той же транзакции.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "match-players"
                ],
                "summary": "Обновить результат игрока",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Match player ID",
                        "name": "participantID",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Изменяемые поля",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/services.UpdateParticipantInput"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/models.MatchParticipant"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            },
            "delete": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "match-players"
                ],
                "summary": "Удалить результат игрока",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Match player ID",
                        "name": "participantID",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            }
        },
        "/matches": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "matches"
                ],
                "summary": "Список матчей",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Фильтр по игре",
                        "name": "game_id",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "description": "scheduled, in_progress, completed, cancelled",
                        "name": "status",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "description": "Раунд турнира",
                        "name": "round",
                        "in": "query"
                    },
                    {
                        "type": "integer",
                        "description": "Домашняя или гостевая франшиза",
                        "name": "franchise_id",
                        "in": "query"
                    },
                    {
                        "type": "integer",
                        "description": "Сколько записей пропустить",
                        "name": "skip",
                        "in": "query"
                    },
                    {
                        "type": "integer",
                        "description": "Максимум записей",
                        "name": "limit",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/models.Match"
                            }
                        }
                    }
                }
            },
            "post": {
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "matches"
                ],
                "summary": "Создать матч",
                "parameters": [
                    {
                        "description": "Данные матча",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/handlers.matchRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/models.Match"
                        }
                    },
                    "422": {
                        "description": "Unprocessable Entity",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            }
        },
        "/matches/{matchID}": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "matches"
                ],
                "summary": "Получить матч",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Match ID",
                        "name": "matchID",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/models.Match"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            },
            "put": {
                "description": "Ключи extra_data сливаются с сохранёнными. Если в extra_data есть notes\nбез ai_summary, к ним добавляется краткое описание.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "matches"
                ],
                "summary": "Частично обновить матч",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Match ID",
                        "name": "matchID",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Изменяемые поля",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/handlers.matchRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/models.Match"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    },
                    "422": {
                        "description": "Unprocessable Entity",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            },
            "delete": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "matches"
                ],
                "summary": "Удалить матч",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Match ID",
                        "name": "matchID",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            }
        },
        "/matches/{matchID}/details": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "matches"
                ],
                "summary": "Матч с соперниками и победителем",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Match ID",
                        "name": "matchID",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/models.Fixture"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            }
        },
        "/matches/{matchID}/players": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "match-players"
                ],
                "summary": "Участники матча",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Match ID",
                        "name": "matchID",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/models.MatchParticipantDetail"
                            }
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            }
        },
        "/players": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "players"
                ],
                "summary": "Список игроков",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Фильтр по франшизе",
                        "name": "franchise_id",
                        "in": "query"
                    },
                    {
                        "type": "integer",
                        "description": "Сколько записей пропустить",
                        "name": "skip",
                        "in": "query"
                    },
                    {
                        "type": "integer",
                        "description": "Максимум записей",
                        "name": "limit",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/models.Player"
                            }
                        }
                    }
                }
            },
            "post": {
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "players"
                ],
                "summary": "Создать игрока",
                "parameters": [
                    {
                        "description": "Данные игрока",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/services.CreatePlayerInput"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/models.Player"
                        }
                    },
                    "422": {
                        "description": "Unprocessable Entity",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            }
        },
        "/players/{playerID}": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "players"
                ],
                "summary": "Получить игрока",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Player ID",
                        "name": "playerID",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/models.Player"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            },
            "put": {
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "players"
                ],
                "summary": "Частично обновить игрока",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Player ID",
                        "name": "playerID",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Изменяемые поля",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/services.UpdatePlayerInput"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/models.Player"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            },
            "delete": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "players"
                ],
                "summary": "Удалить игрока",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Player ID",
                        "name": "playerID",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            }
        },
        "/players/{playerID}/image": {
            "post": {
                "consumes": [
                    "multipart/form-data"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "players"
                ],
                "summary": "Загрузить фото игрока",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Player ID",
                        "name": "playerID",
                        "in": "path",
                        "required": true
                    },
                    {
                        "type": "file",
                        "description": "Фото",
                        "name": "file",
                        "in": "formData",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/models.Player"
                        }
                    }
                }
            }
        },
        "/players/{playerID}/teams": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "players"
                ],
                "summary": "Команды игрока",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Player ID",
                        "name": "playerID",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/models.PlayerTeam"
                            }
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            }
        },
        "/s3-gallery": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "gallery"
                ],
                "summary": "Файлы галереи в хранилище",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "type": "string"
                            }
                        }
                    }
                }
            }
        },
        "/team-players": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "team-players"
                ],
                "summary": "Список связей команда-игрок",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Фильтр по команде",
                        "name": "team_id",
                        "in": "query"
                    },
                    {
                        "type": "integer",
                        "description": "Фильтр по игроку",
                        "name": "player_id",
                        "in": "query"
                    },
                    {
                        "type": "integer",
                        "description": "Сколько записей пропустить",
                        "name": "skip",
                        "in": "query"
                    },
                    {
                        "type": "integer",
                        "description": "Максимум записей",
                        "name": "limit",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/models.TeamMembership"
                            }
                        }
                    }
                }
            },
            "post": {
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "team-players"
                ],
                "summary": "Добавить игрока в команду",
                "parameters": [
                    {
                        "description": "Команда и игрок",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/services.CreateMembershipInput"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/models.TeamMembership"
                        }
                    },
                    "409": {
                        "description": "Conflict",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            }
        },
        "/team-players/{membershipID}": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "team-players"
                ],
                "summary": "Получить связь команда-игрок",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Team player ID",
                        "name": "membershipID",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/models.TeamMembership"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            },
            "put": {
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "team-players"
                ],
                "summary": "Изменить роль игрока в команде",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Team player ID",
                        "name": "membershipID",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Изменяемые поля",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/services.UpdateMembershipInput"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/models.TeamMembership"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            },
            "delete": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "team-players"
                ],
                "summary": "Удалить связь команда-игрок",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Team player ID",
                        "name": "membershipID",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            }
        },
        "/teams": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "teams"
                ],
                "summary": "Список команд",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Фильтр по франшизе",
                        "name": "franchise_id",
                        "in": "query"
                    },
                    {
                        "type": "integer",
                        "description": "Фильтр по игре",
                        "name": "game_id",
                        "in": "query"
                    },
                    {
                        "type": "integer",
                        "description": "Сколько записей пропустить",
                        "name": "skip",
                        "in": "query"
                    },
                    {
                        "type": "integer",
                        "description": "Максимум записей",
                        "name": "limit",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/models.Team"
                            }
                        }
                    }
                }
            },
            "post": {
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "teams"
                ],
                "summary": "Создать команду",
                "parameters": [
                    {
                        "description": "Данные команды",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/services.CreateTeamInput"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/models.Team"
                        }
                    },
                    "422": {
                        "description": "Unprocessable Entity",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            }
        },
        "/teams-with-details": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "teams"
                ],
                "summary": "Команды с названиями франшизы и игры",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Фильтр по франшизе",
                        "name": "franchise_id",
                        "in": "query"
                    },
                    {
                        "type": "integer",
                        "description": "Фильтр по игре",
                        "name": "game_id",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/models.TeamWithDetails"
                            }
                        }
                    }
                }
            }
        },
        "/teams/{teamID}": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "teams"
                ],
                "summary": "Получить команду",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Team ID",
                        "name": "teamID",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/models.Team"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            },
            "put": {
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "teams"
                ],
                "summary": "Частично обновить команду",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Team ID",
                        "name": "teamID",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Изменяемые поля",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/services.UpdateTeamInput"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/models.Team"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            },
            "delete": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "teams"
                ],
                "summary": "Удалить команду",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Team ID",
                        "name": "teamID",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    },
                    "409": {
                        "description": "Conflict",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            }
        },
        "/teams/{teamID}/logo": {
            "post": {
                "consumes": [
                    "multipart/form-data"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "teams"
                ],
                "summary": "Загрузить логотип команды",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Team ID",
                        "name": "teamID",
                        "in": "path",
                        "required": true
                    },
                    {
                        "type": "file",
                        "description": "Логотип",
                        "name": "file",
                        "in": "formData",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/models.Team"
                        }
                    }
                }
            }
        },
        "/teams/{teamID}/players": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "teams"
                ],
                "summary": "Состав команды",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Team ID",
                        "name": "teamID",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/models.TeamRosterEntry"
                            }
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            }
        },
        "/teams/{teamID}/players/{playerID}": {
            "delete": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "teams"
                ],
                "summary": "Убрать игрока из команды",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Team ID",
                        "name": "teamID",
                        "in": "path",
                        "required": true
                    },
                    {
                        "type": "integer",
                        "description": "Player ID",
                        "name": "playerID",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            }
        }
    },
    "definitions": {
        "handlers.matchRequest": {
            "type": "object",
            "properties": {
                "away_franchise_id": {
                    "type": "integer"
                },
                "away_team_id": {
                    "type": "integer"
                },
                "clear_winner": {
                    "type": "boolean"
                },
                "extra_data": {
                    "type": "object",
                    "additionalProperties": true
                },
                "game_id": {
                    "type": "integer"
                },
                "home_franchise_id": {
                    "type": "integer"
                },
                "home_team_id": {
                    "type": "integer"
                },
                "location": {
                    "type": "string"
                },
                "match_date": {
                    "type": "string"
                },
                "match_time": {
                    "type": "string"
                },
                "round": {
                    "type": "string"
                },
                "score_summary": {
                    "type": "string"
                },
                "status": {
                    "$ref": "#/definitions/models.MatchStatus"
                },
                "winner": {
                    "$ref": "#/definitions/models.WinnerRef"
                },
                "winner_id": {
                    "type": "integer"
                },
                "winner_kind": {
                    "$ref": "#/definitions/models.WinnerKind"
                }
            }
        },
        "leaderboard.Combined": {
            "type": "object",
            "properties": {
                "franchise_leaderboard": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/leaderboard.FranchiseEntry"
                    }
                },
                "player_leaderboard": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/leaderboard.PlayerEntry"
                    }
                },
                "team_leaderboard": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/leaderboard.TeamEntry"
                    }
                }
            }
        },
        "leaderboard.FranchiseEntry": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "integer"
                },
                "matches_lost": {
                    "type": "integer"
                },
                "matches_played": {
                    "type": "integer"
                },
                "matches_won": {
                    "type": "integer"
                },
                "name": {
                    "type": "string"
                },
                "players_count": {
                    "type": "integer"
                },
                "teams_count": {
                    "type": "integer"
                },
                "total_points": {
                    "type": "integer"
                }
            }
        },
        "leaderboard.PlayerEntry": {
            "type": "object",
            "properties": {
                "franchise_id": {
                    "type": "integer"
                },
                "franchise_name": {
                    "type": "string"
                },
                "id": {
                    "type": "integer"
                },
                "matches_lost": {
                    "type": "integer"
                },
                "matches_played": {
                    "type": "integer"
                },
                "matches_won": {
                    "type": "integer"
                },
                "name": {
                    "type": "string"
                },
                "total_points": {
                    "type": "integer"
                }
            }
        },
        "leaderboard.TeamEntry": {
            "type": "object",
            "properties": {
                "franchise_name": {
                    "type": "string"
                },
                "game_name": {
                    "type": "string"
                },
                "id": {
                    "type": "integer"
                },
                "matches_lost": {
                    "type": "integer"
                },
                "matches_played": {
                    "type": "integer"
                },
                "matches_won": {
                    "type": "integer"
                },
                "name": {
                    "type": "string"
                },
                "players_count": {
                    "type": "integer"
                },
                "total_points": {
                    "type": "integer"
                }
            }
        },
        "models.DashboardStats": {
            "type": "object",
            "properties": {
                "franchises_total": {
                    "type": "integer"
                },
                "gallery_items_total": {
                    "type": "integer"
                },
                "games_total": {
                    "type": "integer"
                },
                "matches_cancelled": {
                    "type": "integer"
                },
                "matches_completed": {
                    "type": "integer"
                },
                "matches_in_progress": {
                    "type": "integer"
                },
                "matches_scheduled": {
                    "type": "integer"
                },
                "players_total": {
                    "type": "integer"
                },
                "teams_total": {
                    "type": "integer"
                }
            }
        },
        "models.Fixture": {
            "type": "object",
            "properties": {
                "away_franchise_id": {
                    "type": "integer"
                },
                "away_franchise_name": {
                    "type": "string"
                },
                "away_team": {
                    "$ref": "#/definitions/models.NamedRef"
                },
                "away_team_id": {
                    "type": "integer"
                },
                "away_team_name": {
                    "type": "string"
                },
                "extra_data": {
                    "type": "object",
                    "additionalProperties": true
                },
                "game_id": {
                    "type": "integer"
                },
                "game_name": {
                    "type": "string"
                },
                "home_franchise_id": {
                    "type": "integer"
                },
                "home_franchise_name": {
                    "type": "string"
                },
                "home_team": {
                    "$ref": "#/definitions/models.NamedRef"
                },
                "home_team_id": {
                    "type": "integer"
                },
                "home_team_name": {
                    "type": "string"
                },
                "id": {
                    "type": "integer"
                },
                "location": {
                    "type": "string"
                },
                "match_date": {
                    "type": "string"
                },
                "match_time": {
                    "type": "string"
                },
                "round": {
                    "type": "string"
                },
                "score_summary": {
                    "type": "string"
                },
                "status": {
                    "$ref": "#/definitions/models.MatchStatus"
                },
                "winner": {
                    "$ref": "#/definitions/models.ResolvedWinner"
                },
                "winner_id": {
                    "type": "integer"
                },
                "winner_kind": {
                    "$ref": "#/definitions/models.WinnerKind"
                },
                "winner_name": {
                    "type": "string"
                }
            }
        },
        "models.Franchise": {
            "type": "object",
            "properties": {
                "created_at": {
                    "type": "string"
                },
                "extra_data": {
                    "type": "object",
                    "additionalProperties": true
                },
                "franchise_code": {
                    "type": "string"
                },
                "id": {
                    "type": "integer"
                },
                "logo_path": {
                    "type": "string"
                },
                "name": {
                    "type": "string"
                }
            }
        },
        "models.GalleryItem": {
            "type": "object",
            "properties": {
                "created_at": {
                    "type": "string"
                },
                "description": {
                    "type": "string"
                },
                "extra_data": {
                    "type": "object",
                    "additionalProperties": true
                },
                "id": {
                    "type": "integer"
                },
                "image_path": {
                    "type": "string"
                },
                "match_id": {
                    "type": "integer"
                },
                "title": {
                    "type": "string"
                }
            }
        },
        "models.Game": {
            "type": "object",
            "properties": {
                "category": {
                    "$ref": "#/definitions/models.GameCategory"
                },
                "created_at": {
                    "type": "string"
                },
                "description": {
                    "type": "string"
                },
                "extra_data": {
                    "type": "object",
                    "additionalProperties": true
                },
                "id": {
                    "type": "integer"
                },
                "image_path": {
                    "type": "string"
                },
                "name": {
                    "type": "string"
                },
                "winning_points": {
                    "type": "integer"
                }
            }
        },
        "models.GameCategory": {
            "type": "string",
            "enum": [
                "individual",
                "team",
                "mixed"
            ],
            "x-enum-varnames": [
                "GameCategoryIndividual",
                "GameCategoryTeam",
                "GameCategoryMixed"
            ]
        },
        "models.Match": {
            "type": "object",
            "properties": {
                "away_franchise_id": {
                    "type": "integer"
                },
                "away_team_id": {
                    "type": "integer"
                },
                "created_at": {
                    "type": "string"
                },
                "extra_data": {
                    "type": "object",
                    "additionalProperties": true
                },
                "game_id": {
                    "type": "integer"
                },
                "home_franchise_id": {
                    "type": "integer"
                },
                "home_team_id": {
                    "type": "integer"
                },
                "id": {
                    "type": "integer"
                },
                "location": {
                    "type": "string"
                },
                "match_date": {
                    "type": "string"
                },
                "match_time": {
                    "type": "string"
                },
                "round": {
                    "type": "string"
                },
                "score_summary": {
                    "type": "string"
                },
                "status": {
                    "$ref": "#/definitions/models.MatchStatus"
                },
                "winner_id": {
                    "type": "integer"
                },
                "winner_kind": {
                    "$ref": "#/definitions/models.WinnerKind"
                }
            }
        },
        "models.MatchParticipant": {
            "type": "object",
            "properties": {
                "created_at": {
                    "type": "string"
                },
                "extra_data": {
                    "type": "object",
                    "additionalProperties": true
                },
                "franchise_id": {
                    "type": "integer"
                },
                "id": {
                    "type": "integer"
                },
                "is_winner": {
                    "type": "boolean"
                },
                "match_id": {
                    "type": "integer"
                },
                "player_id": {
                    "type": "integer"
                },
                "points_earned": {
                    "type": "integer"
                },
                "team_id": {
                    "type": "integer"
                }
            }
        },
        "models.MatchParticipantDetail": {
            "type": "object",
            "properties": {
                "created_at": {
                    "type": "string"
                },
                "extra_data": {
                    "type": "object",
                    "additionalProperties": true
                },
                "franchise_id": {
                    "type": "integer"
                },
                "franchise_name": {
                    "type": "string"
                },
                "id": {
                    "type": "integer"
                },
                "is_winner": {
                    "type": "boolean"
                },
                "match_id": {
                    "type": "integer"
                },
                "player_id": {
                    "type": "integer"
                },
                "player_name": {
                    "type": "string"
                },
                "points_earned": {
                    "type": "integer"
                },
                "team_id": {
                    "type": "integer"
                }
            }
        },
        "models.MatchStatus": {
            "type": "string",
            "enum": [
                "scheduled",
                "in_progress",
                "completed",
                "cancelled"
            ],
            "x-enum-varnames": [
                "MatchStatusScheduled",
                "MatchStatusInProgress",
                "MatchStatusCompleted",
                "MatchStatusCancelled"
            ]
        },
        "models.NamedRef": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "integer"
                },
                "name": {
                    "type": "string"
                }
            }
        },
        "models.Player": {
            "type": "object",
            "properties": {
                "created_at": {
                    "type": "string"
                },
                "email": {
                    "type": "string"
                },
                "extra_data": {
                    "type": "object",
                    "additionalProperties": true
                },
                "franchise_id": {
                    "type": "integer"
                },
                "id": {
                    "type": "integer"
                },
                "name": {
                    "type": "string"
                },
                "profile_image_path": {
                    "type": "string"
                },
                "total_points": {
                    "type": "integer"
                }
            }
        },
        "models.PlayerTeam": {
            "type": "object",
            "properties": {
                "extra_data": {
                    "type": "object",
                    "additionalProperties": true
                },
                "franchise_name": {
                    "type": "string"
                },
                "game_name": {
                    "type": "string"
                },
                "is_captain": {
                    "type": "boolean"
                },
                "role": {
                    "type": "string"
                },
                "team_id": {
                    "type": "integer"
                },
                "team_name": {
                    "type": "string"
                },
                "team_player_id": {
                    "type": "integer"
                }
            }
        },
        "models.ResolvedWinner": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "integer"
                },
                "name": {
                    "type": "string"
                },
                "type": {
                    "$ref": "#/definitions/models.WinnerVariant"
                }
            }
        },
        "models.Team": {
            "type": "object",
            "properties": {
                "created_at": {
                    "type": "string"
                },
                "extra_data": {
                    "type": "object",
                    "additionalProperties": true
                },
                "franchise_id": {
                    "type": "integer"
                },
                "game_id": {
                    "type": "integer"
                },
                "id": {
                    "type": "integer"
                },
                "logo_path": {
                    "type": "string"
                },
                "name": {
                    "type": "string"
                }
            }
        },
        "models.TeamMembership": {
            "type": "object",
            "properties": {
                "created_at": {
                    "type": "string"
                },
                "extra_data": {
                    "type": "object",
                    "additionalProperties": true
                },
                "id": {
                    "type": "integer"
                },
                "is_captain": {
                    "type": "boolean"
                },
                "player_id": {
                    "type": "integer"
                },
                "role": {
                    "type": "string"
                },
                "team_id": {
                    "type": "integer"
                }
            }
        },
        "models.TeamRosterEntry": {
            "type": "object",
            "properties": {
                "extra_data": {
                    "type": "object",
                    "additionalProperties": true
                },
                "is_captain": {
                    "type": "boolean"
                },
                "player_email": {
                    "type": "string"
                },
                "player_id": {
                    "type": "integer"
                },
                "player_name": {
                    "type": "string"
                },
                "role": {
                    "type": "string"
                },
                "team_player_id": {
                    "type": "integer"
                },
                "total_points": {
                    "type": "integer"
                }
            }
        },
        "models.TeamWithDetails": {
            "type": "object",
            "properties": {
                "created_at": {
                    "type": "string"
                },
                "extra_data": {
                    "type": "object",
                    "additionalProperties": true
                },
                "franchise_id": {
                    "type": "integer"
                },
                "franchise_name": {
                    "type": "string"
                },
                "game_id": {
                    "type": "integer"
                },
                "game_name": {
                    "type": "string"
                },
                "id": {
                    "type": "integer"
                },
                "logo_path": {
                    "type": "string"
                },
                "name": {
                    "type": "string"
                },
                "players_count": {
                    "type": "integer"
                }
            }
        },
        "models.WinnerKind": {
            "type": "string",
            "enum": [
                "franchise",
                "team"
            ],
            "x-enum-varnames": [
                "WinnerKindFranchise",
                "WinnerKindTeam"
            ]
        },
        "models.WinnerRef": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "integer"
                },
                "kind": {
                    "$ref": "#/definitions/models.WinnerKind"
                }
            }
        },
        "models.WinnerVariant": {
            "type": "string",
            "enum": [
                "franchise",
                "team",
                "unresolved"
            ],
            "x-enum-varnames": [
                "WinnerVariantFranchise",
                "WinnerVariantTeam",
                "WinnerVariantUnresolved"
            ]
        },
        "services.CreateFranchiseInput": {
            "type": "object",
            "properties": {
                "extra_data": {
                    "type": "object",
                    "additionalProperties": true
                },
                "franchise_code": {
                    "type": "string"
                },
                "logo_path": {
                    "type": "string"
                },
                "name": {
                    "type": "string"
                }
            }
        },
        "services.CreateGameInput": {
            "type": "object",
            "properties": {
                "category": {
                    "$ref": "#/definitions/models.GameCategory"
                },
                "description": {
                    "type": "string"
                },
                "extra_data": {
                    "type": "object",
                    "additionalProperties": true
                },
                "image_path": {
                    "type": "string"
                },
                "name": {
                    "type": "string"
                },
                "winning_points": {
                    "type": "integer"
                }
            }
        },
        "services.CreateMembershipInput": {
            "type": "object",
            "properties": {
                "extra_data": {
                    "type": "object",
                    "additionalProperties": true
                },
                "is_captain": {
                    "type": "boolean"
                },
                "player_id": {
                    "type": "integer"
                },
                "role": {
                    "type": "string"
                },
                "team_id": {
                    "type": "integer"
                }
            }
        },
        "services.CreateParticipantInput": {
            "type": "object",
            "properties": {
                "extra_data": {
                    "type": "object",
                    "additionalProperties": true
                },
                "franchise_id": {
                    "type": "integer"
                },
                "is_winner": {
                    "type": "boolean"
                },
                "match_id": {
                    "type": "integer"
                },
                "player_id": {
                    "type": "integer"
                },
                "points_earned": {
                    "type": "integer"
                },
                "team_id": {
                    "type": "integer"
                }
            }
        },
        "services.CreatePlayerInput": {
            "type": "object",
            "properties": {
                "email": {
                    "type": "string"
                },
                "extra_data": {
                    "type": "object",
                    "additionalProperties": true
                },
                "franchise_id": {
                    "type": "integer"
                },
                "name": {
                    "type": "string"
                },
                "profile_image_path": {
                    "type": "string"
                }
            }
        },
        "services.CreateTeamInput": {
            "type": "object",
            "properties": {
                "extra_data": {
                    "type": "object",
                    "additionalProperties": true
                },
                "franchise_id": {
                    "type": "integer"
                },
                "game_id": {
                    "type": "integer"
                },
                "logo_path": {
                    "type": "string"
                },
                "name": {
                    "type": "string"
                }
            }
        },
        "services.UpdateFranchiseInput": {
            "type": "object",
            "properties": {
                "extra_data": {
                    "type": "object",
                    "additionalProperties": true
                },
                "franchise_code": {
                    "type": "string"
                },
                "logo_path": {
                    "type": "string"
                },
                "name": {
                    "type": "string"
                }
            }
        },
        "services.UpdateGameInput": {
            "type": "object",
            "properties": {
                "category": {
                    "$ref": "#/definitions/models.GameCategory"
                },
                "description": {
                    "type": "string"
                },
                "extra_data": {
                    "type": "object",
                    "additionalProperties": true
                },
                "image_path": {
                    "type": "string"
                },
                "name": {
                    "type": "string"
                },
                "winning_points": {
                    "type": "integer"
                }
            }
        },
        "services.UpdateMembershipInput": {
            "type": "object",
            "properties": {
                "extra_data": {
                    "type": "object",
                    "additionalProperties": true
                },
                "is_captain": {
                    "type": "boolean"
                },
                "role": {
                    "type": "string"
                }
            }
        },
        "services.UpdateParticipantInput": {
            "type": "object",
            "properties": {
                "extra_data": {
                    "type": "object",
                    "additionalProperties": true
                },
                "is_winner": {
                    "type": "boolean"
                },
                "points_earned": {
                    "type": "integer"
                }
            }
        },
        "services.UpdatePlayerInput": {
            "type": "object",
            "properties": {
                "email": {
                    "type": "string"
                },
                "extra_data": {
                    "type": "object",
                    "additionalProperties": true
                },
                "franchise_id": {
                    "type": "integer"
                },
                "name": {
                    "type": "string"
                },
                "profile_image_path": {
                    "type": "string"
                }
            }
        },
        "services.UpdateTeamInput": {
            "type": "object",
            "properties": {
                "extra_data": {
                    "type": "object",
                    "additionalProperties": true
                },
                "franchise_id": {
                    "type": "integer"
                },
                "game_id": {
                    "type": "integer"
                },
                "logo_path": {
                    "type": "string"
                },
                "name": {
                    "type": "string"
                }
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "AMC Champion League API",
	Description:      "Офисная спортивная лига: игры, франшизы, игроки, команды, матчи и таблица лидеров.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
