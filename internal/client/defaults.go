package client

// Default field selections per entity type, used when a caller passes no
// explicit field list. Attribute fields are not included; they are only
// fetched when requested through dotted paths such as "attrib.fps".

var defaultProjectFields = []string{
	"active",
	"name",
	"code",
	"config",
	"createdAt",
	"data",
	"folderTypes",
	"taskTypes",
	"productTypes",
}

var defaultFolderFields = []string{
	"id",
	"name",
	"label",
	"folderType",
	"path",
	"parentId",
	"active",
	"thumbnailId",
	"data",
	"status",
	"tags",
}

var defaultTaskFields = []string{
	"id",
	"name",
	"label",
	"taskType",
	"folderId",
	"active",
	"thumbnailId",
	"assignees",
	"data",
	"status",
	"tags",
}

var defaultProductFields = []string{
	"id",
	"name",
	"folderId",
	"active",
	"productType",
	"data",
	"status",
	"tags",
}

var defaultVersionFields = []string{
	"id",
	"name",
	"version",
	"productId",
	"taskId",
	"active",
	"author",
	"thumbnailId",
	"createdAt",
	"updatedAt",
	"data",
	"status",
	"tags",
}

var defaultRepresentationFields = []string{
	"id",
	"name",
	"context",
	"createdAt",
	"active",
	"versionId",
	"data",
	"status",
	"tags",
	"files.name",
	"files.hash",
	"files.id",
	"files.path",
	"files.size",
}

var defaultWorkfileFields = []string{
	"active",
	"createdAt",
	"createdBy",
	"id",
	"name",
	"path",
	"projectName",
	"taskId",
	"thumbnailId",
	"updatedAt",
	"updatedBy",
	"data",
	"status",
	"tags",
}

var defaultUserFields = []string{
	"accessGroups",
	"defaultAccessGroups",
	"name",
	"isService",
	"isManager",
	"isGuest",
	"isAdmin",
	"createdAt",
	"active",
	"hasPassword",
	"updatedAt",
	"apiKeyPreview",
	"attrib.avatarUrl",
	"attrib.email",
	"attrib.fullName",
}

var defaultEventFields = []string{
	"id",
	"hash",
	"createdAt",
	"dependsOn",
	"description",
	"project",
	"retries",
	"sender",
	"status",
	"topic",
	"updatedAt",
	"user",
}

var defaultActivityFields = []string{
	"activityId",
	"activityType",
	"activityData",
	"body",
	"entityId",
	"entityType",
	"author.name",
}

// defaultLinkFields are the per-edge link payload columns. They render
// directly under "edges" since they describe the relation, not the node.
var defaultLinkFields = []string{
	"id",
	"linkType",
	"projectName",
	"entityType",
	"entityId",
	"name",
	"direction",
	"description",
	"author",
}
