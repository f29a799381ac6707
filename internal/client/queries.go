package client

import (
	"github.com/fivetwenty-io/slate-client/pkg/graphql"
)

// varAdder declares query variables and keeps the first error. Builders
// declare a dozen variables each; collecting the error once keeps them
// readable.
type varAdder struct {
	query *graphql.Query
	err   error
}

func (a *varAdder) add(key, gqlType string) *graphql.Variable {
	if a.err != nil {
		return nil
	}

	variable, err := a.query.AddVariable(key, gqlType)
	if err != nil {
		a.err = err
	}

	return variable
}

// addLinksFields replaces a requested "links" selection with a nested
// connection carrying link filters and per-edge payload columns. When the
// requested subfields are all payload columns they render under "edges";
// anything else selects from the linked node itself.
func addLinksFields(entityField *graphql.Field, tree fieldTree) error {
	linksTree, requested := tree["links"]
	if !requested {
		return nil
	}

	delete(tree, "links")

	linkField := entityField.AddFieldWithEdges("links")

	names, err := linkField.AddVariable("linkNames", "[String!]")
	if err != nil {
		return err
	}

	nameRegex, err := linkField.AddVariable("linkNameRegex", "String!")
	if err != nil {
		return err
	}

	linkTypes, err := linkField.AddVariable("linkTypes", "[String!]")
	if err != nil {
		return err
	}

	direction, err := linkField.AddVariable("linkDirection", "String!")
	if err != nil {
		return err
	}

	linkField.SetFilter("names", names)
	linkField.SetFilter("nameEx", nameRegex)
	linkField.SetFilter("linkTypes", linkTypes)
	linkField.SetFilter("direction", direction)

	payload := make(map[string]bool, len(defaultLinkFields))
	for _, key := range defaultLinkFields {
		payload[key] = true
	}

	// A bare "links" selection takes every payload column.
	if linksTree == nil {
		for _, key := range defaultLinkFields {
			linkField.AddEdgeField(key)
		}

		return nil
	}

	simple := true

	for key := range linksTree {
		if !payload[key] {
			simple = false

			break
		}
	}

	if simple {
		for _, key := range linksTree.keys() {
			linkField.AddEdgeField(key)
		}

		return nil
	}

	for _, key := range linksTree.keys() {
		if payload[key] {
			linkField.AddEdgeField(key)

			continue
		}

		child := linkField.AddField(key)
		if linksTree[key] != nil {
			linksTree[key].apply(child)
		}
	}

	return nil
}

// projectQuery selects a single project by name.
func projectQuery(fields []string) (*graphql.Query, error) {
	query := graphql.NewQuery("ProjectQuery")

	projectName, err := query.AddVariable("projectName", "String!")
	if err != nil {
		return nil, err
	}

	projectField := query.AddField("project")
	projectField.SetFilter("name", projectName)

	fieldsToTree(fields).apply(projectField)

	return query, nil
}

// projectsQuery lists every project on the server.
func projectsQuery(fields []string) *graphql.Query {
	query := graphql.NewQuery("ProjectsQuery")

	projectsField := query.AddFieldWithEdges("projects")
	fieldsToTree(fields).apply(projectsField)

	return query
}

// foldersQuery lists folders in a project. Filter variables mirror the
// server's folders connection arguments.
func foldersQuery(fields []string) (*graphql.Query, error) {
	query := graphql.NewQuery("FoldersQuery")
	vars := varAdder{query: query}

	projectName := vars.add("projectName", "String!")
	folderIDs := vars.add("folderIds", "[String!]")
	parentIDs := vars.add("parentFolderIds", "[String!]")
	paths := vars.add("folderPaths", "[String!]")
	pathRegex := vars.add("folderPathRegex", "String!")
	names := vars.add("folderNames", "[String!]")
	folderTypes := vars.add("folderTypes", "[String!]")
	hasProducts := vars.add("folderHasProducts", "Boolean!")
	hasTasks := vars.add("folderHasTasks", "Boolean!")
	hasLinks := vars.add("folderHasLinks", "HasLinksFilter")
	hasChildren := vars.add("folderHasChildren", "Boolean!")
	statuses := vars.add("folderStatuses", "[String!]")
	assigneesAll := vars.add("folderAssigneesAll", "[String!]")
	tags := vars.add("folderTags", "[String!]")

	if vars.err != nil {
		return nil, vars.err
	}

	projectField := query.AddField("project")
	projectField.SetFilter("name", projectName)

	foldersField := projectField.AddFieldWithEdges("folders")
	foldersField.SetFilter("ids", folderIDs)
	foldersField.SetFilter("parentIds", parentIDs)
	foldersField.SetFilter("names", names)
	foldersField.SetFilter("paths", paths)
	foldersField.SetFilter("pathEx", pathRegex)
	foldersField.SetFilter("folderTypes", folderTypes)
	foldersField.SetFilter("statuses", statuses)
	foldersField.SetFilter("assignees", assigneesAll)
	foldersField.SetFilter("tags", tags)
	foldersField.SetFilter("hasProducts", hasProducts)
	foldersField.SetFilter("hasTasks", hasTasks)
	foldersField.SetFilter("hasLinks", hasLinks)
	foldersField.SetFilter("hasChildren", hasChildren)

	tree := fieldsToTree(fields)
	if err := addLinksFields(foldersField, tree); err != nil {
		return nil, err
	}

	tree.apply(foldersField)

	return query, nil
}

// tasksQuery lists tasks in a project.
func tasksQuery(fields []string) (*graphql.Query, error) {
	query := graphql.NewQuery("TasksQuery")
	vars := varAdder{query: query}

	projectName := vars.add("projectName", "String!")
	taskIDs := vars.add("taskIds", "[String!]")
	names := vars.add("taskNames", "[String!]")
	taskTypes := vars.add("taskTypes", "[String!]")
	folderIDs := vars.add("folderIds", "[String!]")
	assigneesAny := vars.add("taskAssigneesAny", "[String!]")
	assigneesAll := vars.add("taskAssigneesAll", "[String!]")
	statuses := vars.add("taskStatuses", "[String!]")
	tags := vars.add("taskTags", "[String!]")

	if vars.err != nil {
		return nil, vars.err
	}

	projectField := query.AddField("project")
	projectField.SetFilter("name", projectName)

	tasksField := projectField.AddFieldWithEdges("tasks")
	tasksField.SetFilter("ids", taskIDs)
	tasksField.SetFilter("names", names)
	tasksField.SetFilter("taskTypes", taskTypes)
	tasksField.SetFilter("folderIds", folderIDs)
	tasksField.SetFilter("assigneesAny", assigneesAny)
	tasksField.SetFilter("assignees", assigneesAll)
	tasksField.SetFilter("statuses", statuses)
	tasksField.SetFilter("tags", tags)

	tree := fieldsToTree(fields)
	if err := addLinksFields(tasksField, tree); err != nil {
		return nil, err
	}

	tree.apply(tasksField)

	return query, nil
}

// tasksByFolderPathsQuery lists tasks grouped under their folder paths.
// The folder connection carries the path filter and always selects "path"
// so rows can be grouped.
func tasksByFolderPathsQuery(fields []string) (*graphql.Query, error) {
	query := graphql.NewQuery("TasksByFolderPathQuery")
	vars := varAdder{query: query}

	projectName := vars.add("projectName", "String!")
	names := vars.add("taskNames", "[String!]")
	taskTypes := vars.add("taskTypes", "[String!]")
	folderPaths := vars.add("folderPaths", "[String!]")
	assigneesAny := vars.add("taskAssigneesAny", "[String!]")
	assigneesAll := vars.add("taskAssigneesAll", "[String!]")
	statuses := vars.add("taskStatuses", "[String!]")
	tags := vars.add("taskTags", "[String!]")

	if vars.err != nil {
		return nil, vars.err
	}

	projectField := query.AddField("project")
	projectField.SetFilter("name", projectName)

	foldersField := projectField.AddFieldWithEdges("folders")
	foldersField.AddField("path")
	foldersField.SetFilter("paths", folderPaths)

	tasksField := foldersField.AddFieldWithEdges("tasks")
	tasksField.SetFilter("names", names)
	tasksField.SetFilter("taskTypes", taskTypes)
	tasksField.SetFilter("assigneesAny", assigneesAny)
	tasksField.SetFilter("assignees", assigneesAll)
	tasksField.SetFilter("statuses", statuses)
	tasksField.SetFilter("tags", tags)

	tree := fieldsToTree(fields)
	if err := addLinksFields(tasksField, tree); err != nil {
		return nil, err
	}

	tree.apply(tasksField)

	return query, nil
}

// productsQuery lists products in a project.
func productsQuery(fields []string) (*graphql.Query, error) {
	query := graphql.NewQuery("ProductsQuery")
	vars := varAdder{query: query}

	projectName := vars.add("projectName", "String!")
	productIDs := vars.add("productIds", "[String!]")
	names := vars.add("productNames", "[String!]")
	folderIDs := vars.add("folderIds", "[String!]")
	productTypes := vars.add("productTypes", "[String!]")
	nameRegex := vars.add("productNameRegex", "String!")
	pathRegex := vars.add("productPathRegex", "String!")
	statuses := vars.add("productStatuses", "[String!]")
	tags := vars.add("productTags", "[String!]")

	if vars.err != nil {
		return nil, vars.err
	}

	projectField := query.AddField("project")
	projectField.SetFilter("name", projectName)

	productsField := projectField.AddFieldWithEdges("products")
	productsField.SetFilter("ids", productIDs)
	productsField.SetFilter("names", names)
	productsField.SetFilter("folderIds", folderIDs)
	productsField.SetFilter("productTypes", productTypes)
	productsField.SetFilter("statuses", statuses)
	productsField.SetFilter("tags", tags)
	productsField.SetFilter("nameEx", nameRegex)
	productsField.SetFilter("pathEx", pathRegex)

	tree := fieldsToTree(fields)
	if err := addLinksFields(productsField, tree); err != nil {
		return nil, err
	}

	tree.apply(productsField)

	return query, nil
}

// versionsQuery lists versions in a project. The hero and latest filters
// are nullable booleans understood natively by the server.
func versionsQuery(fields []string) (*graphql.Query, error) {
	query := graphql.NewQuery("VersionsQuery")
	vars := varAdder{query: query}

	projectName := vars.add("projectName", "String!")
	productIDs := vars.add("productIds", "[String!]")
	versionIDs := vars.add("versionIds", "[String!]")
	taskIDs := vars.add("taskIds", "[String!]")
	versions := vars.add("versions", "[Int!]")
	heroOnly := vars.add("heroOnly", "Boolean")
	latestOnly := vars.add("latestOnly", "Boolean")
	heroOrLatestOnly := vars.add("heroOrLatestOnly", "Boolean")
	statuses := vars.add("versionStatuses", "[String!]")
	tags := vars.add("versionTags", "[String!]")

	if vars.err != nil {
		return nil, vars.err
	}

	projectField := query.AddField("project")
	projectField.SetFilter("name", projectName)

	versionsField := projectField.AddFieldWithEdges("versions")
	versionsField.SetFilter("ids", versionIDs)
	versionsField.SetFilter("productIds", productIDs)
	versionsField.SetFilter("versions", versions)
	versionsField.SetFilter("taskIds", taskIDs)
	versionsField.SetFilter("heroOnly", heroOnly)
	versionsField.SetFilter("latestOnly", latestOnly)
	versionsField.SetFilter("heroOrLatestOnly", heroOrLatestOnly)
	versionsField.SetFilter("statuses", statuses)
	versionsField.SetFilter("tags", tags)

	tree := fieldsToTree(fields)
	if err := addLinksFields(versionsField, tree); err != nil {
		return nil, err
	}

	tree.apply(versionsField)

	return query, nil
}

// representationsQuery lists representations in a project.
func representationsQuery(fields []string) (*graphql.Query, error) {
	query := graphql.NewQuery("RepresentationsQuery")
	vars := varAdder{query: query}

	projectName := vars.add("projectName", "String!")
	representationIDs := vars.add("representationIds", "[String!]")
	names := vars.add("representationNames", "[String!]")
	versionIDs := vars.add("versionIds", "[String!]")
	hasLinks := vars.add("representationHasLinks", "HasLinksFilter")
	statuses := vars.add("representationStatuses", "[String!]")
	tags := vars.add("representationTags", "[String!]")

	if vars.err != nil {
		return nil, vars.err
	}

	projectField := query.AddField("project")
	projectField.SetFilter("name", projectName)

	representationsField := projectField.AddFieldWithEdges("representations")
	representationsField.SetFilter("ids", representationIDs)
	representationsField.SetFilter("versionIds", versionIDs)
	representationsField.SetFilter("names", names)
	representationsField.SetFilter("hasLinks", hasLinks)
	representationsField.SetFilter("statuses", statuses)
	representationsField.SetFilter("tags", tags)

	tree := fieldsToTree(fields)
	if err := addLinksFields(representationsField, tree); err != nil {
		return nil, err
	}

	tree.apply(representationsField)

	return query, nil
}

// representationsParentsQuery selects each representation's version,
// product and folder chain in one document.
func representationsParentsQuery(versionFields, productFields, folderFields []string) (*graphql.Query, error) {
	query := graphql.NewQuery("RepresentationsParentsQuery")
	vars := varAdder{query: query}

	projectName := vars.add("projectName", "String!")
	representationIDs := vars.add("representationIds", "[String!]")

	if vars.err != nil {
		return nil, vars.err
	}

	projectField := query.AddField("project")
	projectField.SetFilter("name", projectName)

	representationsField := projectField.AddFieldWithEdges("representations")
	representationsField.AddField("id")
	representationsField.SetFilter("ids", representationIDs)

	versionField := representationsField.AddField("version")
	fieldsToTree(versionFields).apply(versionField)

	productField := versionField.AddField("product")
	fieldsToTree(productFields).apply(productField)

	folderField := productField.AddField("folder")
	fieldsToTree(folderFields).apply(folderField)

	return query, nil
}

// workfilesQuery lists workfiles in a project.
func workfilesQuery(fields []string) (*graphql.Query, error) {
	query := graphql.NewQuery("WorkfilesInfo")
	vars := varAdder{query: query}

	projectName := vars.add("projectName", "String!")
	workfileIDs := vars.add("workfileIds", "[String!]")
	taskIDs := vars.add("taskIds", "[String!]")
	paths := vars.add("paths", "[String!]")
	pathRegex := vars.add("workfilePathRegex", "String!")
	hasLinks := vars.add("workfileHasLinks", "HasLinksFilter")
	statuses := vars.add("workfileStatuses", "[String!]")
	tags := vars.add("workfileTags", "[String!]")

	if vars.err != nil {
		return nil, vars.err
	}

	projectField := query.AddField("project")
	projectField.SetFilter("name", projectName)

	workfilesField := projectField.AddFieldWithEdges("workfiles")
	workfilesField.SetFilter("ids", workfileIDs)
	workfilesField.SetFilter("taskIds", taskIDs)
	workfilesField.SetFilter("paths", paths)
	workfilesField.SetFilter("pathEx", pathRegex)
	workfilesField.SetFilter("hasLinks", hasLinks)
	workfilesField.SetFilter("statuses", statuses)
	workfilesField.SetFilter("tags", tags)

	tree := fieldsToTree(fields)
	if err := addLinksFields(workfilesField, tree); err != nil {
		return nil, err
	}

	tree.apply(workfilesField)

	return query, nil
}

// eventsQuery lists server events. Events page as a top-level connection
// and honor a caller-chosen paging direction.
func eventsQuery(fields []string, order graphql.SortOrder) (*graphql.Query, error) {
	query := graphql.NewQuery("Events")
	query.SetOrder(order)

	vars := varAdder{query: query}

	topics := vars.add("eventTopics", "[String!]")
	ids := vars.add("eventIds", "[String!]")
	projects := vars.add("projectNames", "[String!]")
	statuses := vars.add("eventStatuses", "[String!]")
	users := vars.add("eventUsers", "[String!]")
	includeLogs := vars.add("includeLogsFilter", "Boolean!")
	hasChildren := vars.add("hasChildrenFilter", "Boolean!")
	newerThan := vars.add("newerThanFilter", "String!")
	olderThan := vars.add("olderThanFilter", "String!")

	if vars.err != nil {
		return nil, vars.err
	}

	eventsField := query.AddFieldWithEdges("events")
	eventsField.SetFilter("ids", ids)
	eventsField.SetFilter("topics", topics)
	eventsField.SetFilter("projects", projects)
	eventsField.SetFilter("statuses", statuses)
	eventsField.SetFilter("users", users)
	eventsField.SetFilter("includeLogs", includeLogs)
	eventsField.SetFilter("hasChildren", hasChildren)
	eventsField.SetFilter("newerThan", newerThan)
	eventsField.SetFilter("olderThan", olderThan)

	fieldsToTree(fields).apply(eventsField)

	return query, nil
}

// usersQuery lists users. Users page as a top-level connection.
func usersQuery(fields []string) (*graphql.Query, error) {
	query := graphql.NewQuery("Users")
	vars := varAdder{query: query}

	names := vars.add("userNames", "[String!]")
	emails := vars.add("emails", "[String!]")
	projectName := vars.add("projectName", "String!")

	if vars.err != nil {
		return nil, vars.err
	}

	usersField := query.AddFieldWithEdges("users")
	usersField.SetFilter("names", names)
	usersField.SetFilter("emails", emails)
	usersField.SetFilter("projectName", projectName)

	fieldsToTree(fields).apply(usersField)

	return query, nil
}

// activitiesQuery lists activities in a project.
func activitiesQuery(fields []string, order graphql.SortOrder) (*graphql.Query, error) {
	query := graphql.NewQuery("Activities")
	query.SetOrder(order)

	vars := varAdder{query: query}

	projectName := vars.add("projectName", "String!")
	activityIDs := vars.add("activityIds", "[String!]")
	activityTypes := vars.add("activityTypes", "[String!]")
	entityIDs := vars.add("entityIds", "[String!]")
	entityNames := vars.add("entityNames", "[String!]")
	entityType := vars.add("entityType", "String!")
	changedAfter := vars.add("changedAfter", "String!")
	changedBefore := vars.add("changedBefore", "String!")
	referenceTypes := vars.add("referenceTypes", "[String!]")

	if vars.err != nil {
		return nil, vars.err
	}

	projectField := query.AddField("project")
	projectField.SetFilter("name", projectName)

	activitiesField := projectField.AddFieldWithEdges("activities")
	activitiesField.SetFilter("activityIds", activityIDs)
	activitiesField.SetFilter("activityTypes", activityTypes)
	activitiesField.SetFilter("entityIds", entityIDs)
	activitiesField.SetFilter("entityNames", entityNames)
	activitiesField.SetFilter("entityType", entityType)
	activitiesField.SetFilter("changedAfter", changedAfter)
	activitiesField.SetFilter("changedBefore", changedBefore)
	activitiesField.SetFilter("referenceTypes", referenceTypes)

	fieldsToTree(fields).apply(activitiesField)

	return query, nil
}
