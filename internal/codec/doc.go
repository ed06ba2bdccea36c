// Package codec provides the JSON and YAML serializers shared by the HTTP
// layer and the fixture loader.
package codec
